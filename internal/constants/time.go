package constants

// TimeFormat is the standard wall-clock format used throughout the app (24h)
const TimeFormat = "15:04"

// DateFormat is the standard date format used throughout the app
const DateFormat = "2006-01-02"

// DateTimeFormat combines DateFormat and TimeFormat
const DateTimeFormat = "2006-01-02 15:04"

// Weekdays lists weekday names in calendar order, matching the keys used in
// time availability and daily schedules
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}
