package fn

import (
	"github.com/roach88/odsf/internal/category"
	"github.com/roach88/odsf/internal/ir"
)

var (
	dateSig = sig("DATE", numberResult,
		req("year", category.Number),
		req("month", category.Number),
		req("day", category.Number),
	)
	todaySig   = sig("TODAY", numberResult)
	nowSig     = sig("NOW", numberResult)
	yearSig    = sig("YEAR", numberResult, req("date", category.DateTimeParam))
	monthSig   = sig("MONTH", numberResult, req("date", category.DateTimeParam))
	daySig     = sig("DAY", numberResult, req("date", category.DateTimeParam))
	dateDifSig = sig("DATEDIF", numberResult,
		req("start", category.DateTimeParam),
		req("end", category.DateTimeParam),
		req("unit", category.Text),
	)
	weekdaySig = sig("WEEKDAY", numberResult,
		req("date", category.DateTimeParam),
		opt("type", category.Number),
	)
	dateValueSig = sig("DATEVALUE", numberResult, req("text", category.Text))
)

var dateSignatures = []ir.Signature{
	dateSig, todaySig, nowSig, yearSig, monthSig, daySig, dateDifSig, weekdaySig, dateValueSig,
}

// Date builds a date serial number from year, month and day.
func Date(year, month, day ir.Value) (*ir.Call, error) {
	return dateSig.Call(ir.Args(year, month, day)...)
}

// Today returns the current date.
func Today() (*ir.Call, error) { return todaySig.Call() }

// Now returns the current date and time.
func Now() (*ir.Call, error) { return nowSig.Call() }

// Year extracts the year from a date.
func Year(date ir.Value) (*ir.Call, error) { return yearSig.Call(ir.Args(date)...) }

// Month extracts the month from a date.
func Month(date ir.Value) (*ir.Call, error) { return monthSig.Call(ir.Args(date)...) }

// Day extracts the day of the month from a date.
func Day(date ir.Value) (*ir.Call, error) { return daySig.Call(ir.Args(date)...) }

// DateValue parses a date from text.
func DateValue(text ir.Value) (*ir.Call, error) { return dateValueSig.Call(ir.Args(text)...) }

// DateDifUnit selects what DATEDIF counts.
type DateDifUnit string

const (
	DateDifYears                 DateDifUnit = "y"
	DateDifMonths                DateDifUnit = "m"
	DateDifDays                  DateDifUnit = "d"
	DateDifDaysIgnoreMonthsYears DateDifUnit = "md"
	DateDifMonthsIgnoreYears     DateDifUnit = "ym"
	DateDifDaysIgnoreYears       DateDifUnit = "yd"
)

// DateDif returns the difference between two dates in unit.
func DateDif(start, end ir.Value, unit DateDifUnit) (*ir.Call, error) {
	return dateDifSig.Call(ir.Args(start, end, ir.Text(unit))...)
}

// WeekdayType selects the numbering WEEKDAY returns. WeekdayDefault
// leaves the argument out (Sunday is 1).
type WeekdayType int

const (
	WeekdayDefault    WeekdayType = 0
	WeekdayMonday0    WeekdayType = 3
	WeekdayMonday1    WeekdayType = 11
	WeekdayTuesday1   WeekdayType = 12
	WeekdayWednesday1 WeekdayType = 13
	WeekdayThursday1  WeekdayType = 14
	WeekdayFriday1    WeekdayType = 15
	WeekdaySaturday1  WeekdayType = 16
	WeekdaySunday1    WeekdayType = 17
)

// Weekday returns the day of the week of date.
func Weekday(date ir.Value, typ WeekdayType) (*ir.Call, error) {
	var t ir.Value
	if typ != WeekdayDefault {
		t = ir.Int(typ)
	}
	return weekdaySig.Call(ir.Provided{Value: date}, ir.Opt(t))
}
