package notification

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medibookhq/medibook-api/internal/metrics"
)

// Store loads everything needed to compose an email for one appointment.
type Store interface {
	EmailDataForAppointment(ctx context.Context, appointmentID string) (EmailData, error)
}

// Dispatcher delivers appointment emails off the request path. Dispatch never
// blocks and never fails: a full queue drops the event, a send error is
// logged and counted. Booking succeeds even when email does not.
type Dispatcher struct {
	store  Store
	mailer Mailer
	log    zerolog.Logger
	queue  chan Event
}

func NewDispatcher(store Store, mailer Mailer, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		store:  store,
		mailer: mailer,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.deliver(ev); err != nil {
			metrics.NotificationFailures.Inc()
			d.log.Error().
				Err(err).
				Str("kind", string(ev.Kind)).
				Str("appointment_id", ev.AppointmentID).
				Msg("notification delivery failed")
		}
	}
}

func (d *Dispatcher) deliver(ev Event) error {
	data, err := d.store.EmailDataForAppointment(context.Background(), ev.AppointmentID)
	if err != nil {
		return err
	}

	if data.PatientEmail == "" {
		d.log.Warn().
			Str("appointment_id", ev.AppointmentID).
			Msg("no patient email on file, skipping notification")
		return nil
	}

	return d.mailer.Send(Compose(ev.Kind, data))
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// queued
	default:
		// full queue: drop the email, never the booking
		metrics.NotificationFailures.Inc()
		d.log.Warn().
			Str("kind", string(ev.Kind)).
			Str("appointment_id", ev.AppointmentID).
			Msg("notification queue full, dropping event")
	}
}
