// Package pricing computes parking fees from entry and exit times.
//
// A stay is billed the first-hour rate for anything up to sixty minutes. Past the
// first hour every started half hour is billed in full at the half-hour rate.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

type VehicleType string

const (
	Car        VehicleType = "car"
	Motorcycle VehicleType = "motorcycle"
)

const (
	firstBlock = time.Hour
	extraBlock = 30 * time.Minute
)

var (
	ErrInvalidInterval    = errors.New("exit time is before entry time")
	ErrUnknownVehicleType = errors.New("unknown vehicle type")
)

// ParseVehicleType accepts the canonical names plus the short forms used on the
// entry form ("auto", "moto").
func ParseVehicleType(s string) (VehicleType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "car", "auto":
		return Car, nil
	case "motorcycle", "moto":
		return Motorcycle, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVehicleType, s)
}

func (v VehicleType) Valid() bool {
	return v == Car || v == Motorcycle
}

type Rate struct {
	FirstHour int64 `json:"first_hour"`
	HalfHour  int64 `json:"half_hour"`
}

type RateTable map[VehicleType]Rate

func DefaultRates() RateTable {
	return RateTable{
		Car:        {FirstHour: 500, HalfHour: 250},
		Motorcycle: {FirstHour: 300, HalfHour: 150},
	}
}

type Calculator struct {
	rates RateTable
}

func NewCalculator(rates RateTable) *Calculator {
	if rates == nil {
		rates = DefaultRates()
	}
	return &Calculator{rates: rates}
}

func (c *Calculator) Rates() RateTable {
	out := make(RateTable, len(c.rates))
	for k, v := range c.rates {
		out[k] = v
	}
	return out
}

// Fee returns the amount owed for a stay from entry to exit.
func (c *Calculator) Fee(entry, exit time.Time, vt VehicleType) (int64, error) {
	if exit.Before(entry) {
		return 0, ErrInvalidInterval
	}
	rate, ok := c.rates[vt]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVehicleType, vt)
	}
	return rate.FirstHour + int64(ExtraBlocks(exit.Sub(entry)))*rate.HalfHour, nil
}

// Quote is Fee for a session that is still open, clamping clock skew to zero.
func (c *Calculator) Quote(entry, now time.Time, vt VehicleType) (int64, error) {
	if now.Before(entry) {
		now = entry
	}
	return c.Fee(entry, now, vt)
}

// ExtraBlocks is the number of half-hour blocks billed after the first hour.
func ExtraBlocks(elapsed time.Duration) int {
	if elapsed <= firstBlock {
		return 0
	}
	over := elapsed - firstBlock
	blocks := over / extraBlock
	if over%extraBlock > 0 {
		blocks++
	}
	return int(blocks)
}

// Hours converts elapsed time to hours rounded to two decimals, for display.
func Hours(elapsed time.Duration) float64 {
	return math.Round(elapsed.Hours()*100) / 100
}
