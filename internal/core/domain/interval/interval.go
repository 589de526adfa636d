package interval

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidUnit   = errors.New("invalid unit")
	ErrInvalidNumber = errors.New("invalid number")
)

type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrInvalidUnit) {
		return fmt.Sprintf(
			"invalid value for --%s='%s': only 'm' (minutes) or 'h' (hours) are allowed",
			e.Field,
			e.Value,
		)
	}
	return fmt.Sprintf("could not parse --%s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type Unit struct {
	suffix  string
	seconds uint64
}

func (u Unit) String() string {
	return u.suffix
}

var (
	UnitUnknown Unit = Unit{}
	UnitMinutes Unit = Unit{suffix: "m", seconds: 60}
	UnitHours   Unit = Unit{suffix: "h", seconds: 3600}
)

func parseUnit(value string) (Unit, string, bool) {
	for _, u := range []Unit{UnitMinutes, UnitHours} {
		if prefix, ok := strings.CutSuffix(value, u.suffix); ok {
			return u, prefix, true
		}
	}
	return UnitUnknown, value, false
}

// Interval is a magnitude of minutes or hours, e.g. "20m" or "1h".
type Interval struct {
	Magnitude uint64
	Unit      Unit
}

func (i Interval) String() string {
	return fmt.Sprintf("%d%s", i.Magnitude, i.Unit)
}

// Seconds reports false when the span overflows uint64.
func (i Interval) Seconds() (uint64, bool) {
	if i.Unit.seconds == 0 {
		return 0, false
	}
	if i.Magnitude > math.MaxUint64/i.Unit.seconds {
		return 0, false
	}
	return i.Magnitude * i.Unit.seconds, true
}

// Duration reports false when the span does not fit into time.Duration.
func (i Interval) Duration() (time.Duration, bool) {
	seconds, ok := i.Seconds()
	if !ok || seconds > uint64(math.MaxInt64/int64(time.Second)) {
		return 0, false
	}
	return time.Duration(seconds) * time.Second, true
}

// ParseInterval parses values of the form <digits><m|h>. The field is the
// flag name reported in errors.
func ParseInterval(value string, field string) (i Interval, err error) {
	unit, prefix, ok := parseUnit(value)
	if !ok {
		return i, &ParseError{Field: field, Value: value, Err: ErrInvalidUnit}
	}
	n, err := strconv.ParseUint(prefix, 10, 64)
	if err != nil {
		return i, &ParseError{Field: field, Value: value, Err: ErrInvalidNumber}
	}
	i.Magnitude = n
	i.Unit = unit
	return i, nil
}

func Parse(value string, field string) (time.Duration, error) {
	i, err := ParseInterval(value, field)
	if err != nil {
		return 0, err
	}
	d, ok := i.Duration()
	if !ok {
		return 0, &ParseError{Field: field, Value: value, Err: ErrInvalidNumber}
	}
	return d, nil
}
