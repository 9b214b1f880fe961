package formatter

//go:generate go run golang.org/x/tools/cmd/stringer -type=Unit -linecomment -output=unit_string.go
type Unit int

const (
	UnitSeconds Unit = iota // seconds
	UnitMinutes             // minutes
	UnitHours               // hours
	UnitDays                // days
	UnitWeeks               // weeks
	UnitMonths              // months
	UnitYears               // years
)
