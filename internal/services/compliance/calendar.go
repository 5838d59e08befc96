// Package compliance derives the statutory filing calendar. Deadlines are
// fixed by rule; only the days-remaining and status depend on the reference
// date.
package compliance

import (
	"math"
	"time"
)

// Frequency is how often a filing recurs.
type Frequency string

const (
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Annual    Frequency = "annual"
)

// Status classifies a deadline relative to the reference date.
type Status string

const (
	StatusOverdue  Status = "overdue"
	StatusDueSoon  Status = "due-soon"
	StatusUpcoming Status = "upcoming"
)

// Item is one filing obligation with its derived urgency.
type Item struct {
	Title     string    `json:"title"`
	DueDate   time.Time `json:"dueDate"`
	Frequency Frequency `json:"frequency"`
	DaysUntil int       `json:"daysUntil"`
	Status    Status    `json:"status"`
}

// dueSoonWindow is the number of days before a deadline counts as due soon.
const dueSoonWindow = 7

// Calendar returns the filing obligations for the month and year of ref.
func Calendar(ref time.Time) []Item {
	year, month := ref.Year(), ref.Month()
	loc := ref.Location()

	deadlines := []struct {
		title     string
		due       time.Time
		frequency Frequency
	}{
		{"GST Return Filing (GSTR-3B)", time.Date(year, month, 20, 0, 0, 0, 0, loc), Monthly},
		{"TDS Return Filing (Form 26Q)", time.Date(year, month, 15, 0, 0, 0, 0, loc), Quarterly},
		{"Income Tax Return Filing", time.Date(year, time.July, 31, 0, 0, 0, 0, loc), Annual},
		{"Annual Compliance Certificate", time.Date(year, time.September, 30, 0, 0, 0, 0, loc), Annual},
	}

	items := make([]Item, 0, len(deadlines))
	for _, d := range deadlines {
		days := daysUntil(ref, d.due)
		items = append(items, Item{
			Title:     d.title,
			DueDate:   d.due,
			Frequency: d.frequency,
			DaysUntil: days,
			Status:    statusFor(days),
		})
	}
	return items
}

func daysUntil(ref, due time.Time) int {
	return int(math.Ceil(due.Sub(ref).Hours() / 24))
}

func statusFor(days int) Status {
	switch {
	case days < 0:
		return StatusOverdue
	case days <= dueSoonWindow:
		return StatusDueSoon
	}
	return StatusUpcoming
}
