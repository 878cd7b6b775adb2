package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/medibookhq/medibook-api/internal/audit"
	"github.com/medibookhq/medibook-api/internal/domain/schedule"
	"github.com/medibookhq/medibook-api/internal/httperr"
	"github.com/medibookhq/medibook-api/internal/models"
	"github.com/medibookhq/medibook-api/internal/notification"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory schedule.Repository. It mimics the partial
// unique index on slot_key: a second scheduled appointment for the same
// doctor/hour is rejected with slot_taken.
type fakeRepo struct {
	doctors      map[string]*models.Doctor
	rules        map[string][]models.AvailabilityRule
	appointments map[string]*models.Appointment

	createErr error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		doctors:      map[string]*models.Doctor{},
		rules:        map[string][]models.AvailabilityRule{},
		appointments: map[string]*models.Appointment{},
	}
}

func (r *fakeRepo) addDoctor(id, userID string, approved bool) *models.Doctor {
	doc := &models.Doctor{
		ID:         id,
		FullName:   "Dr. " + id,
		Department: "Cardiology",
		IsApproved: approved,
	}
	if userID != "" {
		doc.UserID = &userID
	}
	r.doctors[id] = doc
	return doc
}

func (r *fakeRepo) addRule(doctorID, day, start, end string) {
	r.rules[doctorID] = append(r.rules[doctorID], models.AvailabilityRule{
		DoctorID:  doctorID,
		Day:       day,
		StartTime: start,
		EndTime:   end,
	})
}

func (r *fakeRepo) addAppointment(patientID, doctorID string, at time.Time, status string) *models.Appointment {
	ap := &models.Appointment{
		ID:        fmt.Sprintf("ap-%d", len(r.appointments)+1),
		PatientID: patientID,
		DoctorID:  doctorID,
		DateTime:  at,
		SlotKey:   schedule.SlotKey(doctorID, at),
		Status:    status,
	}
	r.appointments[ap.ID] = ap
	return ap
}

func (r *fakeRepo) slotConflict(ap *models.Appointment) bool {
	if ap.Status != string(schedule.StatusScheduled) {
		return false
	}
	for _, other := range r.appointments {
		if other.ID == ap.ID {
			continue
		}
		if other.Status == string(schedule.StatusScheduled) && other.SlotKey == ap.SlotKey {
			return true
		}
	}
	return false
}

func (r *fakeRepo) GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error) {
	doc, ok := r.doctors[id]
	if !ok {
		return nil, errNotFound
	}
	return doc, nil
}

func (r *fakeRepo) GetDoctorForUser(ctx context.Context, userID string) (*models.Doctor, error) {
	for _, doc := range r.doctors {
		if doc.UserID != nil && *doc.UserID == userID {
			return doc, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeRepo) ListAvailabilityRules(ctx context.Context, doctorID string) ([]models.AvailabilityRule, error) {
	return r.rules[doctorID], nil
}

func (r *fakeRepo) ReplaceAvailabilityRules(ctx context.Context, doctorID string, rules []models.AvailabilityRule) error {
	r.rules[doctorID] = rules
	return nil
}

func (r *fakeRepo) ListScheduledTimes(ctx context.Context, doctorID string, from, to time.Time, excludeID string) ([]time.Time, error) {
	var times []time.Time
	for _, ap := range r.appointments {
		if ap.DoctorID != doctorID || ap.Status != string(schedule.StatusScheduled) {
			continue
		}
		if excludeID != "" && ap.ID == excludeID {
			continue
		}
		if ap.DateTime.Before(from) || !ap.DateTime.Before(to) {
			continue
		}
		times = append(times, ap.DateTime)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	return times, nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	if r.slotConflict(ap) {
		return httperr.ErrBusiness("slot_taken")
	}
	if ap.ID == "" {
		ap.ID = fmt.Sprintf("ap-%d", len(r.appointments)+1)
	}
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) GetAppointmentForPatient(ctx context.Context, appointmentID, patientID string) (*models.Appointment, error) {
	ap, ok := r.appointments[appointmentID]
	if !ok || ap.PatientID != patientID {
		return nil, errNotFound
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) GetAppointmentForDoctor(ctx context.Context, appointmentID, doctorID string) (*models.Appointment, error) {
	ap, ok := r.appointments[appointmentID]
	if !ok || ap.DoctorID != doctorID {
		return nil, errNotFound
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.appointments[ap.ID]; !ok {
		return errNotFound
	}
	if r.slotConflict(ap) {
		return httperr.ErrBusiness("slot_taken")
	}
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) ListAppointmentsForPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.PatientID == patientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.DoctorID == doctorID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ schedule.Repository = (*fakeRepo)(nil)

// -------- side channel fakes --------

type fakeNotifier struct {
	events []notification.Event
}

func (n *fakeNotifier) Dispatch(ev notification.Event) {
	n.events = append(n.events, ev)
}

type fakeAuditor struct {
	events []audit.Event
}

func (a *fakeAuditor) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}
