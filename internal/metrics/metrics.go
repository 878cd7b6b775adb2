package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medibook_bookings_total",
		Help: "Appointments successfully booked.",
	})

	BookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medibook_booking_conflicts_total",
		Help: "Bookings rejected because the slot was already taken.",
	})

	ReschedulesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medibook_reschedules_total",
		Help: "Appointments successfully rescheduled.",
	})

	CancellationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medibook_cancellations_total",
		Help: "Appointments cancelled by patients or doctors.",
	})

	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medibook_notification_failures_total",
		Help: "Appointment emails that were dropped or failed to send.",
	})

	SlotCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medibook_slot_cache_hits_total",
		Help: "Slot listings served from the redis cache.",
	})
)
