package formatter

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/source-c/go-commons"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	decimalPrecision  = 34
	maxFractionDigits = 15
)

var (
	siUnits     = []string{"B", "kB", "MB", "GB", "TB", "PB"}
	binaryUnits = []string{"B", "kiB", "MiB", "GiB", "TiB", "PiB"}
)

// PrettyPrintSize formats size bytes with the largest unit not exceeding it, rounded half away from zero to
// precision fraction digits. Units are powers of 1000 if si is set and powers of 1024 otherwise. The number
// is formatted for locale (a BCP 47 tag, English if empty) without trailing zeros.
//
//	PrettyPrintSize(1024, 2, true, "de") // 1,02 kB
func PrettyPrintSize(size int64, precision int, si bool, locale string) (string, error) {
	if size < 0 {
		return "", commons.NewInvalidArgument("size must not be negative: %d", size)
	}
	if precision < 0 || precision > maxFractionDigits {
		return "", commons.NewInvalidArgument("precision must be between 0 and %d: %d", maxFractionDigits, precision)
	}
	tag := language.English
	if len(locale) != 0 {
		var err error
		if tag, err = language.Parse(locale); err != nil {
			return "", commons.NewInvalidArgument("invalid locale %q: %s", locale, err)
		}
	}

	var mod int64 = 1024
	units := binaryUnits
	if si {
		mod = 1000
		units = siUnits
	}
	exp, pow := 0, int64(1)
	for exp < len(units)-1 && size/pow >= mod {
		pow *= mod
		exp++
	}

	mantissa, err := roundedQuotient(size, pow, precision)
	if err != nil {
		return "", err
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(mantissa, number.MaxFractionDigits(precision))) + " " + units[exp], nil
}

func roundedQuotient(x, y int64, precision int) (float64, error) {
	ctx := apd.BaseContext.WithPrecision(decimalPrecision)
	ctx.Rounding = apd.RoundHalfUp
	var q apd.Decimal
	if _, err := ctx.Quo(&q, apd.New(x, 0), apd.New(y, 0)); err != nil {
		return 0, err
	}
	if _, err := ctx.Quantize(&q, &q, int32(-precision)); err != nil {
		return 0, err
	}
	q.Reduce(&q)
	return q.Float64()
}
