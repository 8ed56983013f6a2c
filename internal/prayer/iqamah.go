package prayer

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultIqamahOffset applies to every congregational prayer unless
// per-prayer overrides are enabled.
const DefaultIqamahOffset = 10

const (
	MinIqamahOffset = 0
	MaxIqamahOffset = 60
)

const minutesPerDay = 24 * 60

// NotApplicable is displayed for Syuruk's iqamah.
const NotApplicable = "-"

// IqamahOffsets holds per-prayer minute offsets. When Enabled is false every
// prayer uses DefaultIqamahOffset.
type IqamahOffsets struct {
	Enabled bool `json:"enabled"`
	Subuh   int  `json:"subuh"`
	Zohor   int  `json:"zohor"`
	Asar    int  `json:"asar"`
	Maghrib int  `json:"maghrib"`
	Isyak   int  `json:"isyak"`
}

// DefaultOffsets returns offsets with overrides disabled and every value at
// the default.
func DefaultOffsets() IqamahOffsets {
	return IqamahOffsets{
		Subuh:   DefaultIqamahOffset,
		Zohor:   DefaultIqamahOffset,
		Asar:    DefaultIqamahOffset,
		Maghrib: DefaultIqamahOffset,
		Isyak:   DefaultIqamahOffset,
	}
}

// For returns the offset for a prayer; false for Syuruk, which has no iqamah.
func (o IqamahOffsets) For(n Name) (int, bool) {
	if n == Syuruk {
		return 0, false
	}
	if !o.Enabled {
		return DefaultIqamahOffset, true
	}
	switch n {
	case Subuh:
		return o.Subuh, true
	case Zohor:
		return o.Zohor, true
	case Asar:
		return o.Asar, true
	case Maghrib:
		return o.Maghrib, true
	case Isyak:
		return o.Isyak, true
	}
	return 0, false
}

// Validate reports the first override outside 0-60 minutes, in canonical order.
func (o IqamahOffsets) Validate() error {
	values := []struct {
		name Name
		v    int
	}{
		{Subuh, o.Subuh}, {Zohor, o.Zohor}, {Asar, o.Asar}, {Maghrib, o.Maghrib}, {Isyak, o.Isyak},
	}
	for _, x := range values {
		if x.v < MinIqamahOffset || x.v > MaxIqamahOffset {
			return fmt.Errorf("iqamah offset for %s must be between %d and %d minutes, got %d", x.name, MinIqamahOffset, MaxIqamahOffset, x.v)
		}
	}
	return nil
}

// IqamahTime adds offset minutes to an "HH:MM" time, wrapping past midnight.
// Malformed input is returned unchanged.
func IqamahTime(t string, offset int) string {
	m, ok := minutes(t)
	if !ok {
		return t
	}
	m = ((m+offset)%minutesPerDay + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// minutes converts "HH:MM" to minutes since midnight. Hours outside 0-23 or
// minutes outside 0-59 are malformed.
func minutes(t string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(t), ":")
	if len(parts) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
