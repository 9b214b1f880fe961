package formatter

import (
	"errors"
	"fmt"
	"github.com/source-c/go-commons"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestPrettyPrintSize(t *testing.T) {
	fixtures := []struct {
		size      int64
		precision int
		si        bool
		locale    string
		expected  string
	}{
		{100, 2, false, "en", "100 B"},
		{100, 2, true, "en", "100 B"},
		{1024, 2, false, "en", "1 kiB"},
		{1000, 2, true, "en", "1 kB"},
		{1024, 2, true, "en", "1.02 kB"},
		{1000 * 1000, 2, true, "en", "1 MB"},
		{1024 * 1024, 2, false, "en", "1 MiB"},
		{1024 * 1000, 2, true, "en", "1.02 MB"},
		{100, 2, false, "de", "100 B"},
		{1024, 2, false, "de", "1 kiB"},
		{1000, 2, true, "de", "1 kB"},
		{1024, 2, true, "de", "1,02 kB"},
		{1024 * 1000, 2, true, "de", "1,02 MB"},
		{1024 * 1024, 2, false, "de", "1 MiB"},
		{0, 2, false, "en", "0 B"},
		{1536, 0, false, "en", "2 kiB"},
		{1500, 1, true, "", "1.5 kB"},
		{1005, 2, true, "en", "1.01 kB"},
		{1 << 60, 2, false, "en", "1,024 PiB"},
	}
	for _, f := range fixtures {
		t.Run(fmt.Sprintf("%d/%d/%v/%s", f.size, f.precision, f.si, f.locale), func(t *testing.T) {
			res, err := PrettyPrintSize(f.size, f.precision, f.si, f.locale)
			require.NoError(t, err)
			require.Equal(t, f.expected, res)
		})
	}
}

func TestPrettyPrintSize_Invalid(t *testing.T) {
	_, err := PrettyPrintSize(-1, 2, false, "en")
	require.True(t, errors.Is(err, commons.ErrInvalidArgument))
	_, err = PrettyPrintSize(1, -1, false, "en")
	require.True(t, errors.Is(err, commons.ErrInvalidArgument))
	_, err = PrettyPrintSize(1, 16, false, "en")
	require.True(t, errors.Is(err, commons.ErrInvalidArgument))
	_, err = PrettyPrintSize(1, 2, false, "not a locale!")
	require.True(t, errors.Is(err, commons.ErrInvalidArgument))
}

func TestPrettyPrintMicroTimeInterval(t *testing.T) {
	fixtures := []struct {
		end      float64
		expected string
	}{
		{-1000, "00:16:40"},
		{-10, "00:00:10"},
		{-10.2, "00:00:10"},
		{-10000, "02:46:40"},
		{-1000000, "277:46:40"},
		{0, "00:00:00"},
		{1000, "00:16:40"},
		{10, "00:00:10"},
		{10.2, "00:00:10"},
		{10000, "02:46:40"},
		{1000000, "277:46:40"},
	}
	for _, f := range fixtures {
		t.Run(f.expected, func(t *testing.T) {
			require.Equal(t, f.expected, PrettyPrintMicroTimeInterval(0, f.end))
		})
	}
}

func TestRelativeTimeDifference(t *testing.T) {
	to := time.Date(2019, 7, 1, 0, 0, 0, 0, time.UTC)
	day := 24 * time.Hour
	fixtures := []struct {
		name     string
		from     time.Time
		unit     Unit
		expected int64
	}{
		{"Second", to.Add(-time.Second), UnitSeconds, 1},
		{"Seconds", to.Add(-59 * time.Second), UnitSeconds, 59},
		{"Minute", to.Add(-time.Minute), UnitMinutes, 1},
		{"Minutes", to.Add(-59 * time.Minute), UnitMinutes, 59},
		{"Hour", to.Add(-time.Hour), UnitHours, 1},
		{"Hours", to.Add(-23 * time.Hour), UnitHours, 23},
		{"Day", to.AddDate(0, 0, -1), UnitDays, 1},
		{"Days", to.Add(-6 * day), UnitDays, 6},
		{"DaysPartial", to.Add(-6*day - 23*time.Hour), UnitDays, 6},
		{"Week", to.AddDate(0, 0, -7), UnitWeeks, 1},
		{"WeekAndHour", to.Add(-7*day - time.Hour), UnitWeeks, 1},
		{"Weeks", to.Add(-29 * day), UnitWeeks, 4},
		{"Month", to.Add(-30 * day), UnitMonths, 1},
		{"CalendarMonth", to.AddDate(0, -1, 0), UnitMonths, 1},
		{"Months", to.Add(-30 * 11 * day), UnitMonths, 11},
		{"CalendarMonths", to.AddDate(0, -11, 0), UnitMonths, 11},
		{"Year", to.Add(-365 * day), UnitYears, 1},
		{"CalendarYear", to.AddDate(-1, 0, 0), UnitYears, 1},
		{"Years", to.Add(-365 * 36 * day), UnitYears, 36},
		{"CalendarYears", to.AddDate(-36, 0, 0), UnitYears, 36},
	}
	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			diff, unit := RelativeTimeDifference(f.from, to)
			require.Equal(t, f.unit, unit)
			require.Equal(t, f.expected, diff)

			diff, unit = RelativeTimeDifference(to, f.from)
			require.Equal(t, f.unit, unit)
			require.Equal(t, f.expected, diff)
		})
	}
}

func TestRelativeTimeDifference_DaylightSaving(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	to := time.Date(2019, 4, 4, 0, 0, 0, 0, berlin)
	from := to.AddDate(0, 0, -7)
	require.Less(t, to.Sub(from), 7*24*time.Hour)

	diff, unit := RelativeTimeDifference(from, to)
	require.Equal(t, UnitDays, unit)
	require.Equal(t, int64(7), diff)
}

func TestRelativeTimeDifferenceOf(t *testing.T) {
	now := time.Now()

	diff, unit, err := RelativeTimeDifferenceOf(now.Unix()-1, now.Unix())
	require.NoError(t, err)
	require.Equal(t, UnitSeconds, unit)
	require.Equal(t, int64(1), diff)

	diff, unit, err = RelativeTimeDifferenceOf(now.Add(-2*time.Hour).Unix(), nil)
	require.NoError(t, err)
	require.Equal(t, UnitHours, unit)
	require.Equal(t, int64(2), diff)

	from := now.AddDate(0, 0, -3)
	diff, unit, err = RelativeTimeDifferenceOf(&from, now)
	require.NoError(t, err)
	require.Equal(t, UnitDays, unit)
	require.Equal(t, int64(3), diff)

	diff, unit, err = RelativeTimeDifferenceOf(uint32(now.Unix()-60*60*24*365*2), now)
	require.NoError(t, err)
	require.Equal(t, UnitYears, unit)
	require.Equal(t, int64(2), diff)
}

func TestRelativeTimeDifferenceOf_Invalid(t *testing.T) {
	now := time.Now()
	fixtures := []struct {
		from any
		to   any
	}{
		{true, true},
		{nil, nil},
		{"test", "test"},
		{struct{}{}, struct{}{}},
		{now.Unix(), false},
		{now.Unix(), "test"},
		{now.Unix(), struct{}{}},
		{now, false},
		{now, "test"},
		{(*time.Time)(nil), nil},
		{1.5, now},
	}
	for _, f := range fixtures {
		t.Run(fmt.Sprintf("%T/%T", f.from, f.to), func(t *testing.T) {
			_, _, err := RelativeTimeDifferenceOf(f.from, f.to)
			require.Error(t, err)
			require.True(t, errors.Is(err, commons.ErrInvalidArgument))
		})
	}
}

func TestUnit_String(t *testing.T) {
	require.Equal(t, "seconds", UnitSeconds.String())
	require.Equal(t, "years", UnitYears.String())
	require.Equal(t, "Unit(7)", Unit(7).String())
}
