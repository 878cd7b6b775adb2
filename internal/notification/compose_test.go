package notification

import (
	"strings"
	"testing"
	"time"
)

func sampleData() EmailData {
	return EmailData{
		PatientEmail: "jordan@example.com",
		PatientName:  "Jordan Lee",
		DoctorName:   "Dr. Amara Okafor",
		Department:   "Cardiology",
		DateTime:     time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
	}
}

func TestCompose_Confirmation(t *testing.T) {
	msg := Compose(KindConfirmation, sampleData())

	if msg.To != "jordan@example.com" {
		t.Fatalf("to = %q", msg.To)
	}
	if msg.Subject != "Appointment Confirmed - MediBook" {
		t.Fatalf("subject = %q", msg.Subject)
	}
	for _, want := range []string{
		"Dear Jordan Lee",
		"Dr. Amara Okafor",
		"Cardiology",
		"Wednesday, March 4, 2026 at 9:00 AM",
	} {
		if !strings.Contains(msg.Body, want) {
			t.Fatalf("body missing %q:\n%s", want, msg.Body)
		}
	}
}

func TestCompose_Cancellation(t *testing.T) {
	msg := Compose(KindCancellation, sampleData())

	if msg.Subject != "Appointment Cancelled - MediBook" {
		t.Fatalf("subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.Body, "has been cancelled") {
		t.Fatalf("body missing cancellation text:\n%s", msg.Body)
	}
	if !strings.Contains(msg.Body, "Original Date & Time") {
		t.Fatalf("body missing original time label:\n%s", msg.Body)
	}
}

func TestCompose_Reminder(t *testing.T) {
	msg := Compose(KindReminder, sampleData())

	if msg.Subject != "Appointment Reminder - MediBook" {
		t.Fatalf("subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.Body, "upcoming appointment") {
		t.Fatalf("body missing reminder text:\n%s", msg.Body)
	}
}
