package gp

import (
	"strconv"
	"time"
)

// CPLC dates pack a calendar date into two bytes read as four hex digits
// "Y DDD": the last digit of the year followed by the day of the year.
// The decade is not encoded; it is resolved against the wall clock as the
// most recent year whose last digit matches.

// decodeDate converts a 4-digit CPLC date to "YYYY-MM-DD". It reports
// false for values that do not decode to a real date (all zeros, hex
// digits outside 0-9, day of year out of range).
func decodeDate(val string) (string, bool) {
	return decodeDateAt(val, time.Now())
}

func decodeDateAt(val string, now time.Time) (string, bool) {
	if len(val) != 4 || val == "0000" {
		return "", false
	}

	yearDigit, err := strconv.Atoi(val[:1])
	if err != nil {
		return "", false
	}
	dayOfYear, err := strconv.Atoi(val[1:])
	if err != nil {
		return "", false
	}
	if dayOfYear < 1 || dayOfYear > 366 {
		return "", false
	}

	year := now.Year() - (now.Year()-yearDigit)%10
	date := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, dayOfYear-1)
	if date.Year() != year {
		// Day 366 of a non-leap year.
		return "", false
	}

	return date.Format("2006-01-02"), true
}
