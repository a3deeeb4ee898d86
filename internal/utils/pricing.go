package utils

import (
	"strconv"
	"strings"
	"time"
)

const msPerDay = 24 * 60 * 60 * 1000

// RentalDays returns the billable whole days between pickup and return:
// the millisecond difference divided by one day, rounded up, never below 1.
// A 3-hour rental still bills one day.
func RentalDays(pickup, ret time.Time) int64 {
	diff := ret.Sub(pickup).Milliseconds()
	days := (diff + msPerDay - 1) / msPerDay
	if days < 1 {
		days = 1
	}
	return days
}

// EstimateTotal computes dailyRate*days - discount, clamped at zero. The
// figure is shown to the user; it is not what gets persisted on the
// contract row.
func EstimateTotal(dailyRate float64, days int64, discount float64) float64 {
	total := dailyRate*float64(days) - discount
	if total < 0 {
		return 0
	}
	return total
}

// FormatTHB renders an amount as Thai baht with thousands separators,
// e.g. ฿1,234.50
func FormatTHB(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteRune('฿')
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
