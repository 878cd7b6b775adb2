package notification

import "time"

type Kind string

const (
	KindConfirmation Kind = "confirmation"
	KindCancellation Kind = "cancellation"
	KindReminder     Kind = "reminder"
)

// Event asks for one email about one appointment. Everything else needed to
// compose the message is loaded by the worker, so callers stay decoupled from
// delivery entirely.
type Event struct {
	Kind          Kind
	AppointmentID string
}

type EmailData struct {
	PatientEmail string
	PatientName  string
	DoctorName   string
	Department   string
	DateTime     time.Time
}
