package booking

import (
	"context"
	"testing"
	"time"

	"github.com/medibookhq/medibook-api/internal/domain/schedule"
	"github.com/medibookhq/medibook-api/internal/httperr"
)

// 2026-03-03 is a Tuesday; the doctor's Wednesday rule lands on 2026-03-04.
var tuesdayNoon = time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

func TestListSlots_UnknownDoctor(t *testing.T) {
	uc := NewListSlots(newFakeRepo(), nil)

	_, err := uc.Execute(context.Background(), "doc-missing", "", tuesdayNoon)
	if httperr.BusinessCode(err) != "doctor_not_found" {
		t.Fatalf("expected doctor_not_found, got %v", err)
	}
}

func TestListSlots_UnapprovedDoctor(t *testing.T) {
	repo := newFakeRepo()
	repo.addDoctor("doc-1", "", false)
	uc := NewListSlots(repo, nil)

	_, err := uc.Execute(context.Background(), "doc-1", "", tuesdayNoon)
	if httperr.BusinessCode(err) != "doctor_not_approved" {
		t.Fatalf("expected doctor_not_approved, got %v", err)
	}
}

func TestListSlots_BookingFlow(t *testing.T) {
	repo := newFakeRepo()
	repo.addDoctor("doc-1", "", true)
	repo.addRule("doc-1", "Wednesday", "09:00", "11:00")

	listUC := NewListSlots(repo, nil)
	createUC := NewCreateAppointment(repo, &fakeNotifier{}, &fakeAuditor{}, nil)

	slots, err := listUC.Execute(context.Background(), "doc-1", "", tuesdayNoon)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if !s.Available {
			t.Fatalf("slot %v should be free before booking", s.DateTime)
		}
	}

	_, err = createUC.Execute(context.Background(), Session{UserID: "pat-1"}, CreateAppointmentInput{
		DoctorID: "doc-1",
		DateTime: slots[0].DateTime,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slots, err = listUC.Execute(context.Background(), "doc-1", "", tuesdayNoon)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].Available {
		t.Fatal("booked 09:00 slot still reads available")
	}
	if !slots[1].Available {
		t.Fatal("10:00 slot should remain available")
	}
}

func TestListSlots_RescheduleSelfExclusion(t *testing.T) {
	repo := newFakeRepo()
	repo.addDoctor("doc-1", "", true)
	repo.addRule("doc-1", "Wednesday", "09:00", "10:00")
	ap := repo.addAppointment("pat-1", "doc-1",
		time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
		string(schedule.StatusScheduled))

	uc := NewListSlots(repo, nil)

	slots, err := uc.Execute(context.Background(), "doc-1", "", tuesdayNoon)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 1 || slots[0].Available {
		t.Fatalf("plain view should show the slot as taken: %+v", slots)
	}

	// Excluding the appointment being moved frees its own hour.
	slots, err = uc.Execute(context.Background(), "doc-1", ap.ID, tuesdayNoon)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 1 || !slots[0].Available {
		t.Fatalf("self-excluded view should show the slot as free: %+v", slots)
	}
}

func TestListSlots_CancelledAppointmentsDoNotBlock(t *testing.T) {
	repo := newFakeRepo()
	repo.addDoctor("doc-1", "", true)
	repo.addRule("doc-1", "Wednesday", "09:00", "10:00")
	repo.addAppointment("pat-1", "doc-1",
		time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
		string(schedule.StatusCancelled))

	uc := NewListSlots(repo, nil)

	slots, err := uc.Execute(context.Background(), "doc-1", "", tuesdayNoon)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 1 || !slots[0].Available {
		t.Fatalf("cancelled appointment must not block the slot: %+v", slots)
	}
}
