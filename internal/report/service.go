package report

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

type Service interface {
	Daily(ctx context.Context, day time.Time) (*Daily, error)
}

type service struct {
	repo Repository
	loc  *time.Location
}

func NewService(repo Repository, loc *time.Location) Service {
	if loc == nil {
		loc = time.Local
	}
	return &service{repo: repo, loc: loc}
}

func (s *service) Daily(ctx context.Context, day time.Time) (*Daily, error) {
	from, to := Bounds(day, s.loc)

	totals, err := s.repo.Totals(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}

	sessions, err := s.repo.SessionsEntered(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily sessions: %w", err)
	}

	return &Daily{
		Date:      from.Format(DateLayout),
		Entered:   totals.Entered,
		Earnings:  totals.Earnings,
		StillOpen: totals.StillOpen,
		Sessions:  sessions,
	}, nil
}

// Bounds returns the half-open [start, end) of the calendar day containing t in loc.
func Bounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}

// ParseDate reads a YYYY-MM-DD query value; empty means today.
func ParseDate(s string, loc *time.Location, now time.Time) (time.Time, error) {
	if s == "" {
		return now.In(loc), nil
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
