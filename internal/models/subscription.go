package models

import "time"

// Subscription represents a recurring monthly obligation. It is
// display-only: subscriptions are never materialized into transactions.
type Subscription struct {
	Base
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`
	Amount int64  `gorm:"type:bigint;not null" json:"amount"`
	DueDay int    `gorm:"not null" json:"due_day"`
}

// NextDueDate returns the next occurrence of the subscription's due day
// on or after ref's calendar day. A due day beyond the end of a month is
// clamped to that month's last day, so due day 31 falls due on Feb 28/29.
func (s *Subscription) NextDueDate(ref time.Time) time.Time {
	today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	due := dueInMonth(ref.Year(), ref.Month(), s.DueDay, ref.Location())
	if due.Before(today) {
		next := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, 1, 0)
		due = dueInMonth(next.Year(), next.Month(), s.DueDay, ref.Location())
	}
	return due
}

// DaysUntilDue returns the number of whole days from ref's calendar day
// to the next due date.
func (s *Subscription) DaysUntilDue(ref time.Time) int {
	today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return int(s.NextDueDate(ref).Sub(today).Hours() / 24)
}

func dueInMonth(year int, month time.Month, day int, loc *time.Location) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
