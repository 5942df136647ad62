// Package policy holds the capacity rules shared by slot search and the load view.
package policy

import (
	"crowd/config"
	"crowd/internal/domains/slot/model"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var errInvalidFraction = errors.New("walk-in buffer fraction must be within [0, 1)")

// Buffer is the fraction of hourly capacity kept for walk-ins.
type Buffer struct {
	fraction decimal.Decimal
}

func ParseBuffer(fraction string) (Buffer, error) {
	value, err := decimal.NewFromString(fraction)
	if err != nil {
		return Buffer{}, fmt.Errorf("parsing walk-in buffer fraction %q: %w", fraction, err)
	}

	if value.IsNegative() || value.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return Buffer{}, fmt.Errorf("%w: %s", errInvalidFraction, value)
	}

	return Buffer{fraction: value}, nil
}

// FromConfig reads the configured walk-in buffer.
func FromConfig(cfg *config.Config) (Buffer, error) {
	return ParseBuffer(cfg.Allocation.WalkinBufferFraction)
}

func MustParseBuffer(fraction string) Buffer {
	buffer, err := ParseBuffer(fraction)
	if err != nil {
		panic(err)
	}

	return buffer
}

func (b Buffer) String() string {
	return b.fraction.String()
}

// ScheduledLimit is floor(capacity * (1 - fraction)).
func (b Buffer) ScheduledLimit(capacity int) int {
	return int(decimal.NewFromInt(int64(capacity)).
		Mul(decimal.NewFromInt(1).Sub(b.fraction)).
		Floor().
		IntPart())
}

// Limit is the bound a request of the given kind is checked against.
func (b Buffer) Limit(capacity int, walkIn bool) int {
	if walkIn {
		return capacity
	}

	return b.ScheduledLimit(capacity)
}

// Open reports whether one more request of the given kind fits in the cell. Every request
// needs room under capacity, scheduled ones must also stay under the scheduled limit.
func (b Buffer) Open(cell model.LoadCell, capacity int, walkIn bool) bool {
	if cell.Total() >= capacity {
		return false
	}

	return walkIn || cell.ScheduledCount < b.ScheduledLimit(capacity)
}

const (
	defaultHorizonDays = 3
	defaultOpenHour    = 9
	defaultCloseHour   = 17
)

// Window is the bookable part of the calendar: Days from today, hours [Open, Close).
type Window struct {
	Days        int
	Open        int
	Close       int
	MaxAttempts int
}

// WindowFromConfig falls back to three days of 09:00 to 17:00 when the configured values
// are missing or inverted.
func WindowFromConfig(cfg *config.Config) Window {
	w := Window{
		Days:        cfg.Allocation.HorizonDays,
		Open:        cfg.Allocation.OpenHour,
		Close:       cfg.Allocation.CloseHour,
		MaxAttempts: cfg.Allocation.MaxAttempts,
	}

	if w.Days < 1 {
		w.Days = defaultHorizonDays
	}

	if w.Open < 0 || w.Close > 24 || w.Close <= w.Open {
		w.Open, w.Close = defaultOpenHour, defaultCloseHour
	}

	// at most one attempt per horizon cell
	if w.MaxAttempts < 1 {
		w.MaxAttempts = w.Days * (w.Close - w.Open)
	}

	return w
}

// Bookable reports whether an hour of today can still be booked. Scheduled requests need a
// future hour, walk-ins may take the current one.
func (w Window) Bookable(hour, current int, walkIn bool) bool {
	if walkIn {
		return hour >= current
	}

	return hour > current
}
