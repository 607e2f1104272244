// Package biztime centralizes time handling. All storage and transport use
// UTC with millisecond precision; implicit local timezones are prohibited.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// UnixMilliToTime converts a Unix millisecond timestamp to a UTC time.
func UnixMilliToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// UnixMilliToTimePtr converts an optional Unix millisecond timestamp to an
// optional UTC time.
func UnixMilliToTimePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms).UTC()
	return &t
}

// TimePtrToUnixMilli converts an optional time to an optional Unix
// millisecond timestamp.
func TimePtrToUnixMilli(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
