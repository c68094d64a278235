package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidSlot  = errors.New("invalid time slot")
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidHours = errors.New("hours must be at least 1")
)

const DateLayout = "2006-01-02"

// slotTokens is the fixed bookable grid: hourly tokens from 06:00 to 21:00.
var slotTokens = []string{
	"06:00", "07:00", "08:00", "09:00", "10:00", "11:00",
	"12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
	"18:00", "19:00", "20:00", "21:00",
}

var slotIndex = func() map[string]int {
	m := make(map[string]int, len(slotTokens))
	for i, s := range slotTokens {
		m[s] = i
	}
	return m
}()

// Slot is one fixed hourly time token, the atomic bookable unit.
type Slot struct {
	value string
}

func NewSlot(s string) (Slot, error) {
	if _, ok := slotIndex[s]; !ok {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{value: s}, nil
}

func (s Slot) String() string {
	return s.value
}

func (s Slot) IsZero() bool {
	return s.value == ""
}

// Next returns the slot one hour later. ok is false when the grid ends.
func (s Slot) Next() (Slot, bool) {
	i, found := slotIndex[s.value]
	if !found || i+1 >= len(slotTokens) {
		return Slot{}, false
	}
	return Slot{value: slotTokens[i+1]}, true
}

// Covered expands the slot to the hours contiguous tokens starting at it.
// ok is false when the expansion would run past the end of the grid.
func (s Slot) Covered(hours int) ([]Slot, bool) {
	if hours < 1 {
		return nil, false
	}
	i, found := slotIndex[s.value]
	if !found || i+hours > len(slotTokens) {
		return nil, false
	}
	covered := make([]Slot, hours)
	for j := 0; j < hours; j++ {
		covered[j] = Slot{value: slotTokens[i+j]}
	}
	return covered, true
}

// Slots returns the full bookable grid in order.
func Slots() []string {
	out := make([]string, len(slotTokens))
	copy(out, slotTokens)
	return out
}

// Date is a calendar day without a time component.
type Date struct {
	t time.Time
}

func NewDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}
