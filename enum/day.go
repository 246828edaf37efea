package main

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDay = errors.New("unknown day")

// Day is a day of the week, numbered from Sunday.
type Day int

const (
	Sunday Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Valid reports whether d is one of the seven constants.
func (d Day) Valid() bool { return d >= Sunday && d <= Saturday }

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

func (d Day) Weekend() bool { return d == Saturday || d == Sunday }

// ParseDay matches name against the day names, ignoring case.
func ParseDay(name string) (Day, error) {
	for i, n := range dayNames {
		if strings.EqualFold(n, name) {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownDay)
}
