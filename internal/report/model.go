package report

import "parkreg/internal/parking"

// Daily summarizes one calendar day in the site's time zone.
type Daily struct {
	Date string `json:"date" example:"2026-10-15"`
	// Entered counts sessions that started during the day.
	Entered int `json:"entered" example:"42"`
	// Earnings sums the fees of sessions that exited during the day.
	Earnings int64 `json:"earnings" example:"21500"`
	// StillOpen counts the day's entries that have not exited.
	StillOpen int               `json:"still_open" example:"3"`
	Sessions  []parking.Session `json:"sessions"`
}

type Totals struct {
	Entered   int   `db:"entered"`
	Earnings  int64 `db:"earnings"`
	StillOpen int   `db:"still_open"`
}
