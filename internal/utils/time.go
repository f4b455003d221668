package util

import (
	"fmt"
	"strings"
	"time"
)

type LocalDateTime struct {
	time.Time
}

const layout = "2006-01-02T15:04:05"

var location = time.UTC

func SetLocation(loc *time.Location) {
	if loc != nil {
		location = loc
	}
}

func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t}
}

func (ldt *LocalDateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(layout, s, location)
	if err != nil {
		return err
	}
	ldt.Time = t
	return nil
}

func (ldt LocalDateTime) MarshalJSON() ([]byte, error) {
	if ldt.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ldt.In(location).Format(layout) + `"`), nil
}

// FormatClock renders d as m:ss. Minutes are not padded and may exceed 59.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
