package booking

import (
	"context"
	"testing"
	"time"

	"github.com/medibookhq/medibook-api/internal/domain/schedule"
	"github.com/medibookhq/medibook-api/internal/httperr"
	"github.com/medibookhq/medibook-api/internal/notification"
)

var slotFri14 = time.Date(2026, 3, 6, 14, 0, 0, 0, time.UTC)

func TestReschedule_Success(t *testing.T) {
	repo := newFakeRepo()
	repo.addDoctor("doc-1", "", true)
	ap := repo.addAppointment("pat-1", "doc-1", slotWed9, string(schedule.StatusScheduled))
	notifier := &fakeNotifier{}
	auditor := &fakeAuditor{}
	uc := NewRescheduleAppointment(repo, notifier, auditor, nil)

	moved, err := uc.Execute(context.Background(), Session{UserID: "pat-1"}, ap.ID, slotFri14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !moved.DateTime.Equal(slotFri14) {
		t.Fatalf("date_time = %v, want %v", moved.DateTime, slotFri14)
	}
	if moved.SlotKey != schedule.SlotKey("doc-1", slotFri14) {
		t.Fatalf("slot key = %q", moved.SlotKey)
	}
	if moved.Status != string(schedule.StatusScheduled) {
		t.Fatalf("status = %q, want scheduled", moved.Status)
	}

	stored := repo.appointments[ap.ID]
	if !stored.DateTime.Equal(slotFri14) {
		t.Fatalf("stored date_time = %v, want %v", stored.DateTime, slotFri14)
	}

	if len(notifier.events) != 1 || notifier.events[0].Kind != notification.KindConfirmation {
		t.Fatalf("expected one confirmation, got %+v", notifier.events)
	}
	if len(auditor.events) != 1 || auditor.events[0].Action != "appointment_rescheduled" {
		t.Fatalf("unexpected audit trail: %+v", auditor.events)
	}
}

func TestReschedule_OldSlotFreed(t *testing.T) {
	repo := newFakeRepo()
	repo.addDoctor("doc-1", "", true)
	repo.addRule("doc-1", "Wednesday", "09:00", "10:00")
	repo.addRule("doc-1", "Friday", "14:00", "15:00")
	ap := repo.addAppointment("pat-1", "doc-1", slotWed9, string(schedule.StatusScheduled))

	uc := NewRescheduleAppointment(repo, &fakeNotifier{}, &fakeAuditor{}, nil)
	if _, err := uc.Execute(context.Background(), Session{UserID: "pat-1"}, ap.ID, slotFri14); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slots, err := NewListSlots(repo, nil).Execute(context.Background(), "doc-1", "", tuesdayNoon)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if !slots[0].Available {
		t.Fatal("vacated Wednesday slot should be free again")
	}
	if slots[1].Available {
		t.Fatal("new Friday slot should be taken")
	}
}

func TestReschedule_NotOwner(t *testing.T) {
	repo := newFakeRepo()
	repo.addDoctor("doc-1", "", true)
	ap := repo.addAppointment("pat-1", "doc-1", slotWed9, string(schedule.StatusScheduled))
	uc := NewRescheduleAppointment(repo, &fakeNotifier{}, &fakeAuditor{}, nil)

	_, err := uc.Execute(context.Background(), Session{UserID: "pat-2"}, ap.ID, slotFri14)
	if httperr.BusinessCode(err) != "appointment_not_found" {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestReschedule_TargetSlotTaken(t *testing.T) {
	repo := newFakeRepo()
	repo.addDoctor("doc-1", "", true)
	ap := repo.addAppointment("pat-1", "doc-1", slotWed9, string(schedule.StatusScheduled))
	repo.addAppointment("pat-2", "doc-1", slotFri14, string(schedule.StatusScheduled))
	notifier := &fakeNotifier{}
	uc := NewRescheduleAppointment(repo, notifier, &fakeAuditor{}, nil)

	_, err := uc.Execute(context.Background(), Session{UserID: "pat-1"}, ap.ID, slotFri14)
	if httperr.BusinessCode(err) != "slot_taken" {
		t.Fatalf("expected slot_taken, got %v", err)
	}

	stored := repo.appointments[ap.ID]
	if !stored.DateTime.Equal(slotWed9) {
		t.Fatalf("appointment moved despite conflict: %v", stored.DateTime)
	}
	if len(notifier.events) != 0 {
		t.Fatal("no notification on a failed move")
	}
}

func TestReschedule_CancelledRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.addDoctor("doc-1", "", true)
	ap := repo.addAppointment("pat-1", "doc-1", slotWed9, string(schedule.StatusCancelled))
	uc := NewRescheduleAppointment(repo, &fakeNotifier{}, &fakeAuditor{}, nil)

	_, err := uc.Execute(context.Background(), Session{UserID: "pat-1"}, ap.ID, slotFri14)
	if httperr.BusinessCode(err) != "invalid_state" {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}
