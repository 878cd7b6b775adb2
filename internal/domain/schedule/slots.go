package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/medibookhq/medibook-api/internal/models"
)

// Slot is one bookable hour, derived on every read and never persisted.
type Slot struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	DateTime  time.Time `json:"date_time"`
	Available bool      `json:"available"`
}

const slotWindowDays = 7

// WindowDays is how far ahead of "now" slots are offered. Day 0 (today)
// is never offered; booking starts tomorrow.
func WindowDays() int {
	return slotWindowDays
}

// GenerateSlots expands a doctor's weekly availability rules into concrete
// hourly slots for the next 7 days and marks the ones colliding with an
// already scheduled appointment as unavailable. It is a pure function of its
// inputs: same rules, same booked instants and same now give the same list.
//
// Rules with missing or unparsable times are skipped instead of failing the
// whole computation. Overlapping rules for the same day produce duplicate
// entries on purpose; the caller renders what it gets.
func GenerateSlots(rules []models.AvailabilityRule, booked []time.Time, now time.Time) []Slot {
	if len(rules) == 0 {
		return []Slot{}
	}

	loc := now.Location()

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[hourBucket(t)] = struct{}{}
	}

	slots := []Slot{}

	for d := 1; d <= slotWindowDays; d++ {
		date := now.AddDate(0, 0, d)
		dayName := date.Weekday().String()

		for _, rule := range rules {
			if rule.Day != dayName {
				continue
			}

			startHour, ok := parseHour(rule.StartTime)
			if !ok {
				continue
			}
			endHour, ok := parseHour(rule.EndTime)
			if !ok {
				continue
			}

			for hour := startHour; hour < endHour; hour++ {
				slotTime := time.Date(
					date.Year(), date.Month(), date.Day(),
					hour, 0, 0, 0,
					loc,
				)

				if !slotTime.After(now) {
					continue
				}

				_, isBooked := taken[hourBucket(slotTime)]

				slots = append(slots, Slot{
					ID:        slotTime.Format("2006-01-02") + "-" + strconv.Itoa(hour),
					Date:      slotTime.Format("Mon, Jan 2"),
					Time:      slotTime.Format("3:04 PM"),
					DateTime:  slotTime,
					Available: !isBooked,
				})
			}
		}
	}

	return slots
}

// parseHour extracts the hour component from an "HH:MM" string. Minutes are
// ignored: slots live on exact hour boundaries. "24:00" is a valid end bound
// (a block running to midnight ends after the 23:00 slot); only a missing
// separator or a non-numeric hour invalidates the rule.
func parseHour(hm string) (int, bool) {
	parts := strings.Split(hm, ":")
	if len(parts) < 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 {
		return 0, false
	}

	return hour, true
}

// SlotKey identifies a doctor/hour pair. It is stored on every appointment
// and backs the partial unique index that closes the booking race. It shares
// hourBucket with the generator so the availability a patient sees and the
// uniqueness the index enforces always agree on hour boundaries.
func SlotKey(doctorID string, t time.Time) string {
	return doctorID + "|" + hourBucket(t)
}

func hourBucket(t time.Time) string {
	return t.UTC().Format("2006-01-02-15")
}
