package services

import (
	"math"
	"sort"
	"time"

	"stafflog/app/models"
)

// HolidaySources are the three holiday inputs for one employee. Extra
// and Occasional carry every stored date regardless of month; the
// resolver decides what counts.
type HolidaySources struct {
	Default    models.Weekday
	Extra      []time.Time // this employee's extra holiday dates, any month
	Occasional []time.Time // organization-wide one-off dates, any month
}

// HolidayBreakdown is the resolved non-working picture of one month.
type HolidayBreakdown struct {
	// Dates is the sorted, de-duplicated union of default holidays in
	// the month, the employee's extra holidays in the month, and every
	// occasional holiday on record.
	Dates []time.Time

	DefaultCount    int
	ExtraCount      int // extra dates falling inside (year, month)
	OccasionalCount int // de-duplicated occasional dates, all months

	// ExtraCountAllMonths is the unfiltered per-employee holiday count
	// the legacy rollup charged against the current month. It differs
	// from ExtraCount whenever an employee carries holidays in other
	// months; the discrepancy is inherited behavior, kept visible here
	// instead of silently fixed.
	ExtraCountAllMonths int

	TotalDays int
	Workdays  int // TotalDays - len(Dates); may go negative
}

// ResolveHolidays computes the holiday set and workday count for
// (year, month). Pure: no storage access, no side effects.
func ResolveHolidays(year int, month time.Month, src HolidaySources) HolidayBreakdown {
	day := src.Default
	if day == "" {
		day = models.DefaultHolidayFallback
	}

	totalDays := daysInMonth(year, month)
	union := make(map[string]time.Time)

	b := HolidayBreakdown{TotalDays: totalDays}

	for d := 1; d <= totalDays; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		if models.WeekdayOf(date) == day {
			b.DefaultCount++
			union[dateKey(date)] = date
		}
	}

	b.ExtraCountAllMonths = len(src.Extra)
	extraSeen := make(map[string]bool)
	for _, date := range src.Extra {
		if date.Year() != year || date.Month() != month {
			continue
		}
		key := dateKey(date)
		if extraSeen[key] {
			continue
		}
		extraSeen[key] = true
		b.ExtraCount++
		union[key] = models.DateOnly(date)
	}

	occasionalSeen := make(map[string]bool)
	for _, date := range src.Occasional {
		key := dateKey(date)
		if occasionalSeen[key] {
			continue
		}
		occasionalSeen[key] = true
		b.OccasionalCount++
		union[key] = models.DateOnly(date)
	}

	b.Dates = make([]time.Time, 0, len(union))
	for _, date := range union {
		b.Dates = append(b.Dates, date)
	}
	sort.Slice(b.Dates, func(i, j int) bool { return b.Dates[i].Before(b.Dates[j]) })

	b.Workdays = totalDays - len(b.Dates)
	return b
}

// TotalCount is the size of the de-duplicated holiday union.
func (b HolidayBreakdown) TotalCount() int {
	return len(b.Dates)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// AttendanceStats are the derived presence figures for a dashboard or
// detail view. PresentDays comes straight from the attendance count.
type AttendanceStats struct {
	Workdays    int     `json:"workdays"`
	PresentDays int     `json:"present_days"`
	AbsentDays  int     `json:"absent_days"`
	PresentPct  float64 `json:"present_percentage"`
	AbsentPct   float64 `json:"absent_percentage"`
	HolidayPct  float64 `json:"holiday_percentage"`
	WorkdayPct  float64 `json:"workday_percentage"`
}

// ComputeAttendanceStats derives presence percentages. Every ratio
// clamps to 0 when workdays is zero or negative, so the figure never
// divides by zero even when the holiday arithmetic over-subtracts.
func ComputeAttendanceStats(b HolidayBreakdown, presentDays int) AttendanceStats {
	stats := AttendanceStats{
		Workdays:    b.Workdays,
		PresentDays: presentDays,
		AbsentDays:  b.Workdays - presentDays,
	}
	if b.Workdays > 0 {
		stats.PresentPct = round2(float64(presentDays) / float64(b.Workdays) * 100)
		stats.AbsentPct = round2(float64(stats.AbsentDays) / float64(b.Workdays) * 100)
		stats.HolidayPct = round2(float64(b.ExtraCount) / float64(b.Workdays) * 100)
		if b.TotalDays > 0 {
			stats.WorkdayPct = round2(float64(b.Workdays) / float64(b.TotalDays) * 100)
		}
	}
	return stats
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
