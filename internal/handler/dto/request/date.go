package request

import (
	"strings"
	"time"

	"frontdesk/internal/pkg/errs"
)

// Date unmarshals calendar dates in "2006-01-02" form. Stays are priced per
// night, so requests carry dates, not timestamps.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return errs.Wrap(err, "date must be in YYYY-MM-DD format")
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}
