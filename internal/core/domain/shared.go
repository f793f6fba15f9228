package domain

import (
	"fmt"
	"math"
	"strconv"
)

type ID string

func ValidateID(id string) bool {
	return len(id) == 24
}

// Amount is a monetary value in cents.
type Amount int64

func NewAmountFromCents(cents int64) Amount {
	return Amount(cents)
}

// ParseAmount parses a decimal string ("19.99") into cents. Non-numeric,
// NaN/Inf and negative inputs are rejected.
func ParseAmount(s string) (Amount, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if f < 0 {
		return 0, fmt.Errorf("amount must not be negative, got %q", s)
	}
	return Amount(math.Round(f * 100)), nil
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Float64() float64 {
	return float64(a) / 100
}

type Event interface {
	GetName() string
	GetEntityName() string
}
