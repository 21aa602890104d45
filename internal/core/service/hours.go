package service

import (
	"math"
	"strconv"
	"strings"
)

// CalculateHours converts start/finish/break HH:MM clock strings into worked
// hours rounded to two decimals. Any parse failure yields 0.0 rather than an
// error: a garbled timesheet is stored with zero hours, not rejected.
func CalculateHours(start, finish, breakTime string) float64 {
	startMin, ok := clockMinutes(start)
	if !ok {
		return 0.0
	}
	finishMin, ok := clockMinutes(finish)
	if !ok {
		return 0.0
	}
	breakMin, ok := clockMinutes(breakTime)
	if !ok {
		return 0.0
	}

	workMin := finishMin - startMin - breakMin
	return math.Round(float64(workMin)/60*100) / 100
}

// clockMinutes parses an HH:MM string into minutes since midnight.
func clockMinutes(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}
