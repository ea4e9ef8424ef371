package response

import (
	"time"
)

const dateTimeLayout = "2006-01-02T15:04:05"

// DateTime renders a zone-less local date-time.
type DateTime struct {
	time.Time
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	t, err := time.Parse(`"`+dateTimeLayout+`"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func startOfDay(t time.Time) *DateTime {
	if t.IsZero() {
		return nil
	}
	y, m, day := t.Date()
	return &DateTime{time.Date(y, m, day, 0, 0, 0, 0, time.UTC)}
}

func endOfDay(t time.Time) *DateTime {
	if t.IsZero() {
		return nil
	}
	y, m, day := t.Date()
	return &DateTime{time.Date(y, m, day, 23, 59, 59, 0, time.UTC)}
}
