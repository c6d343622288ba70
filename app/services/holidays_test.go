package services

import (
	"testing"
	"time"

	"stafflog/app/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveHolidays(t *testing.T) {
	t.Run("fridays only in a 30-day month", func(t *testing.T) {
		// April 2026 has 30 days and 4 Fridays (3, 10, 17, 24).
		b := ResolveHolidays(2026, time.April, HolidaySources{Default: models.Friday})

		if b.TotalDays != 30 {
			t.Fatalf("TotalDays = %d, want 30", b.TotalDays)
		}
		if b.DefaultCount != 4 {
			t.Errorf("DefaultCount = %d, want 4", b.DefaultCount)
		}
		if b.TotalCount() != 4 {
			t.Errorf("TotalCount = %d, want 4", b.TotalCount())
		}
		if b.Workdays != 26 {
			t.Errorf("Workdays = %d, want 26", b.Workdays)
		}
	})

	t.Run("empty default falls back to friday", func(t *testing.T) {
		b := ResolveHolidays(2026, time.April, HolidaySources{})
		if b.DefaultCount != 4 {
			t.Errorf("DefaultCount = %d, want 4 fridays", b.DefaultCount)
		}
	})

	t.Run("overlapping sources are counted once", func(t *testing.T) {
		// 2026-04-03 is a Friday: also granted as an extra holiday and
		// declared occasional. The union must hold it once.
		overlap := date(2026, time.April, 3)
		b := ResolveHolidays(2026, time.April, HolidaySources{
			Default:    models.Friday,
			Extra:      []time.Time{overlap},
			Occasional: []time.Time{overlap, overlap},
		})

		if b.DefaultCount != 4 || b.ExtraCount != 1 || b.OccasionalCount != 1 {
			t.Errorf("counts = (%d, %d, %d), want (4, 1, 1)",
				b.DefaultCount, b.ExtraCount, b.OccasionalCount)
		}
		if b.TotalCount() != 4 {
			t.Errorf("TotalCount = %d, want 4 (overlap de-duplicated)", b.TotalCount())
		}
		if b.Workdays != 26 {
			t.Errorf("Workdays = %d, want 26", b.Workdays)
		}
	})

	t.Run("extra holidays outside the month are excluded from the set but kept in the legacy count", func(t *testing.T) {
		b := ResolveHolidays(2026, time.April, HolidaySources{
			Default: models.Friday,
			Extra: []time.Time{
				date(2026, time.April, 6),
				date(2026, time.March, 2), // different month
				date(2025, time.April, 6), // different year
			},
		})

		if b.ExtraCount != 1 {
			t.Errorf("ExtraCount = %d, want 1", b.ExtraCount)
		}
		if b.ExtraCountAllMonths != 3 {
			t.Errorf("ExtraCountAllMonths = %d, want 3", b.ExtraCountAllMonths)
		}
		if b.TotalCount() != 5 {
			t.Errorf("TotalCount = %d, want 5", b.TotalCount())
		}
	})

	t.Run("occasional holidays from other months still shrink the workday count", func(t *testing.T) {
		// Inherited behavior: occasional dates are never month-filtered.
		b := ResolveHolidays(2026, time.April, HolidaySources{
			Default:    models.Friday,
			Occasional: []time.Time{date(2026, time.January, 1)},
		})
		if b.Workdays != 25 {
			t.Errorf("Workdays = %d, want 25", b.Workdays)
		}
	})

	t.Run("union is sorted", func(t *testing.T) {
		b := ResolveHolidays(2026, time.April, HolidaySources{
			Default:    models.Sunday,
			Occasional: []time.Time{date(2026, time.April, 29), date(2026, time.April, 1)},
		})
		for i := 1; i < len(b.Dates); i++ {
			if b.Dates[i].Before(b.Dates[i-1]) {
				t.Fatalf("Dates not sorted: %v before %v", b.Dates[i], b.Dates[i-1])
			}
		}
	})

	t.Run("workdays can go negative", func(t *testing.T) {
		// 31 occasional dates outside a 30-day month plus 4 default
		// fridays push the union past the month length.
		var occasional []time.Time
		for d := 1; d <= 31; d++ {
			occasional = append(occasional, date(2026, time.March, d))
		}
		b := ResolveHolidays(2026, time.April, HolidaySources{
			Default:    models.Friday,
			Occasional: occasional,
		})
		if b.Workdays >= 0 {
			t.Fatalf("Workdays = %d, expected negative", b.Workdays)
		}
	})
}

func TestComputeAttendanceStats(t *testing.T) {
	t.Run("normal month", func(t *testing.T) {
		b := ResolveHolidays(2026, time.April, HolidaySources{Default: models.Friday})
		stats := ComputeAttendanceStats(b, 13)

		if stats.Workdays != 26 || stats.PresentDays != 13 || stats.AbsentDays != 13 {
			t.Fatalf("stats = %+v", stats)
		}
		if stats.PresentPct != 50 || stats.AbsentPct != 50 {
			t.Errorf("percentages = %.2f/%.2f, want 50/50", stats.PresentPct, stats.AbsentPct)
		}
		if stats.WorkdayPct != 86.67 {
			t.Errorf("WorkdayPct = %.2f, want 86.67", stats.WorkdayPct)
		}
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		b := ResolveHolidays(2026, time.April, HolidaySources{Default: models.Friday})
		stats := ComputeAttendanceStats(b, 1)
		if stats.PresentPct != 3.85 {
			t.Errorf("PresentPct = %v, want 3.85", stats.PresentPct)
		}
	})

	t.Run("clamps to zero when no workdays remain", func(t *testing.T) {
		var occasional []time.Time
		for d := 1; d <= 30; d++ {
			occasional = append(occasional, date(2026, time.April, d))
		}
		b := ResolveHolidays(2026, time.April, HolidaySources{Default: models.Friday, Occasional: occasional})
		if b.Workdays > 0 {
			t.Fatalf("fixture broken: Workdays = %d", b.Workdays)
		}

		stats := ComputeAttendanceStats(b, 5)
		if stats.PresentPct != 0 || stats.AbsentPct != 0 || stats.HolidayPct != 0 || stats.WorkdayPct != 0 {
			t.Errorf("percentages not clamped: %+v", stats)
		}
	})
}
