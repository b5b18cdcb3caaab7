package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// DateOnly maps a calendar date (no time-of-day) onto a SQL DATE column.
type DateOnly time.Time

// NewDateOnly builds a DateOnly for the given calendar day.
func NewDateOnly(year int, month time.Month, day int) DateOnly {
	return DateOnly(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Implements the driver.Valuer interface for GORM
func (d DateOnly) Value() (driver.Value, error) {
	return time.Time(d).Format(dateLayout), nil
}

// Implements the sql.Scanner interface for GORM
func (d *DateOnly) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = DateOnly{}
		return nil
	case time.Time:
		*d = DateOnly(time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC))
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", value)
	}
}

func (d *DateOnly) parse(s string) error {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*d = DateOnly(t)
	return nil
}

func (d DateOnly) GormDataType() string {
	return "date"
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(dateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return errors.New("date is required")
	}
	return d.parse(s)
}

func (d DateOnly) String() string {
	return time.Time(d).Format(dateLayout)
}

// Before reports whether d falls strictly before other.
func (d DateOnly) Before(other DateOnly) bool {
	return time.Time(d).Before(time.Time(other))
}

// TimeOfDay maps a wall-clock time (no date) onto a SQL TIME column.
type TimeOfDay time.Time

// NewTimeOfDay builds a TimeOfDay for the given wall-clock reading.
func NewTimeOfDay(hour, min, sec int) TimeOfDay {
	return normalizeClock(hour, min, sec)
}

// Implements the driver.Valuer interface for GORM
func (t TimeOfDay) Value() (driver.Value, error) {
	return time.Time(t).Format(timeLayout), nil
}

// Implements the sql.Scanner interface for GORM
func (t *TimeOfDay) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case time.Time:
		*t = normalizeClock(v.Hour(), v.Minute(), v.Second())
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", value)
	}
}

func (t *TimeOfDay) parse(s string) error {
	s = strings.TrimSpace(s)
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		// Accept HH:MM as well
		parsed, err = time.Parse("15:04", s)
		if err != nil {
			return err
		}
	}
	*t = normalizeClock(parsed.Hour(), parsed.Minute(), parsed.Second())
	return nil
}

// normalizeClock pins the date part so two TimeOfDay values are always
// comparable regardless of where they were scanned from.
func normalizeClock(hour, min, sec int) TimeOfDay {
	return TimeOfDay(time.Date(0, time.January, 1, hour, min, sec, 0, time.UTC))
}

func (t TimeOfDay) GormDataType() string {
	return "time"
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(timeLayout) + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return errors.New("time is required")
	}
	return t.parse(s)
}

func (t TimeOfDay) String() string {
	return time.Time(t).Format(timeLayout)
}

// Before reports whether t falls strictly before other on the clock.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return time.Time(t).Before(time.Time(other))
}
