package common

import (
	"time"
)

// DateLayout
const (
	DateFormatYYYYMMDD                  = "2006-01-02"
	DateFormatYYYYMMDDWithTime          = "2006-01-02 15:04:05"
	DateFormatYYYYMMDDHHMMSSWithoutDash = "20060102150405"
	DateFormatYYYYMMDDWithTimeAndOffset = "2006-01-02T15:04:05-07:00" // same as RFC3339/ISO8601
)

func Now() time.Time {
	return time.Now().UTC()
}

func ParseStringToDatetime(format, value string) (time.Time, error) {
	return time.Parse(format, value)
}
