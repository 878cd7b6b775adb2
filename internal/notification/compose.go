package notification

import "fmt"

const dateLayout = "Monday, January 2, 2006 at 3:04 PM"

type Message struct {
	To      string
	Subject string
	Body    string
}

// Compose renders the patient-facing email for an appointment event.
func Compose(kind Kind, data EmailData) Message {
	formatted := data.DateTime.Format(dateLayout)

	switch kind {
	case KindCancellation:
		return Message{
			To:      data.PatientEmail,
			Subject: "Appointment Cancelled - MediBook",
			Body: fmt.Sprintf(
				"Dear %s,\n\nYour appointment has been cancelled as requested.\n\n"+
					"Doctor: %s\nDepartment: %s\nOriginal Date & Time: %s\n\n"+
					"If you'd like to reschedule, please visit our booking page.\n\n"+
					"Best regards,\nMediBook Team\n",
				data.PatientName, data.DoctorName, data.Department, formatted,
			),
		}
	case KindReminder:
		return Message{
			To:      data.PatientEmail,
			Subject: "Appointment Reminder - MediBook",
			Body: fmt.Sprintf(
				"Dear %s,\n\nThis is a friendly reminder about your upcoming appointment.\n\n"+
					"Doctor: %s\nDepartment: %s\nDate & Time: %s\n\n"+
					"Please arrive 15 minutes before your scheduled time.\n\n"+
					"Best regards,\nMediBook Team\n",
				data.PatientName, data.DoctorName, data.Department, formatted,
			),
		}
	default:
		return Message{
			To:      data.PatientEmail,
			Subject: "Appointment Confirmed - MediBook",
			Body: fmt.Sprintf(
				"Dear %s,\n\nYour appointment has been successfully scheduled.\n\n"+
					"Doctor: %s\nDepartment: %s\nDate & Time: %s\n\n"+
					"Please arrive 15 minutes before your scheduled time.\n\n"+
					"Best regards,\nMediBook Team\n",
				data.PatientName, data.DoctorName, data.Department, formatted,
			),
		}
	}
}
