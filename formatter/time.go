package formatter

import (
	"fmt"
	"github.com/source-c/go-commons"
	"math"
	"reflect"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// PrettyPrintMicroTimeInterval formats the absolute distance between two timestamps given in seconds as hh:mm:ss.
// Fractions of a second are dropped, hours are not wrapped.
//
//	PrettyPrintMicroTimeInterval(0, 1000000) // 277:46:40
func PrettyPrintMicroTimeInterval(start, end float64) string {
	seconds := int64(math.Abs(end - start))
	return fmt.Sprintf("%02d:%02d:%02d", seconds/secondsPerHour, seconds/secondsPerMinute%60, seconds%60)
}

// RelativeTimeDifference returns the distance between from and to in the coarsest fitting unit. The order of the
// arguments does not matter.
//
// Below a week the number of full days is counted on the wall clock of from's location, so a week shortened by a
// daylight saving switch still counts as 7 days. Above that, months are 30 days and years 365 days long.
func RelativeTimeDifference(from, to time.Time) (int64, Unit) {
	loc := from.Location()
	if to.Before(from) {
		from, to = to, from
	}
	elapsed := int64(to.Sub(from) / time.Second)
	switch {
	case elapsed < secondsPerMinute:
		return elapsed, UnitSeconds
	case elapsed < secondsPerHour:
		return elapsed / secondsPerMinute, UnitMinutes
	case elapsed < secondsPerDay:
		return elapsed / secondsPerHour, UnitHours
	case elapsed < 7*secondsPerDay:
		return max(fullDays(from.In(loc), to.In(loc)), 1), UnitDays
	}
	days := elapsed / secondsPerDay
	switch {
	case days < 30:
		return days / 7, UnitWeeks
	case days < 365:
		return days / 30, UnitMonths
	}
	return days / 365, UnitYears
}

// RelativeTimeDifferenceOf is like [RelativeTimeDifference] for loosely typed arguments: [time.Time], *[time.Time]
// or integer unix seconds. A nil to means now. Any other value yields an error matching [commons.ErrInvalidArgument].
func RelativeTimeDifferenceOf(from, to any) (int64, Unit, error) {
	start, err := toTime(from, false)
	if err != nil {
		return 0, 0, err
	}
	end, err := toTime(to, true)
	if err != nil {
		return 0, 0, err
	}
	diff, unit := RelativeTimeDifference(start, end)
	return diff, unit, nil
}

func toTime(value any, nilIsNow bool) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		if nilIsNow {
			return time.Now(), nil
		}
	case time.Time:
		return v, nil
	case *time.Time:
		if v != nil {
			return *v, nil
		}
	default:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return time.Unix(rv.Int(), 0), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if rv.Uint() <= math.MaxInt64 {
				return time.Unix(int64(rv.Uint()), 0), nil
			}
		}
	}
	return time.Time{}, commons.NewInvalidArgument("unsupported time value %T(%v)", value, value)
}

// fullDays counts the days between the wall clocks of from and to, both in the same location.
func fullDays(from, to time.Time) int64 {
	y1, m1, d1 := from.Date()
	y2, m2, d2 := to.Date()
	days := int64(time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC).Sub(time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)) / (24 * time.Hour))
	if clock(to) < clock(from) {
		days--
	}
	return days
}

func clock(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}
