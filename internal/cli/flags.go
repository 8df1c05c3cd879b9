package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value that parses YYYY-MM-DD flags into a
// time.Time and records whether the flag was set at all.
type dateValue struct {
	t   *time.Time
	set *bool
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(t *time.Time, set *bool) *dateValue {
	return &dateValue{t: t, set: set}
}

func (d *dateValue) String() string {
	if d.set == nil || !*d.set {
		return ""
	}
	return d.t.Format("2006-01-02")
}

func (d *dateValue) Set(s string) error {
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("expected YYYY-MM-DD, got %q", s)
	}
	*d.t = parsed
	*d.set = true
	return nil
}

func (d *dateValue) Type() string {
	return "date"
}
