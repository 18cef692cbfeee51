// Package board models the scoring geometry of a standard 20-segment dartboard.
//
// A Target is an immutable (zone, number) pair whose label and value are
// always derived from those two fields. The package also owns the finishing
// arithmetic shared by the throw simulator and the checkout advisor.
package board

import (
	"fmt"
	"strings"
)

// Zone identifies the scoring region a dart is aimed at or lands in.
type Zone int

const (
	ZoneUnspecified Zone = iota
	ZoneSingle
	ZoneDouble
	ZoneTriple
	ZoneBull
	ZoneOuterBull
	ZoneMiss
)

func (z Zone) String() string {
	switch z {
	case ZoneUnspecified:
		return "Unspecified"
	case ZoneSingle:
		return "Single"
	case ZoneDouble:
		return "Double"
	case ZoneTriple:
		return "Triple"
	case ZoneBull:
		return "Bullseye"
	case ZoneOuterBull:
		return "Outer bullseye"
	case ZoneMiss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// Code returns the compact wire code stored in progress records.
func (z Zone) Code() string {
	switch z {
	case ZoneSingle:
		return "S"
	case ZoneDouble:
		return "D"
	case ZoneTriple:
		return "T"
	case ZoneBull:
		return "BULL"
	case ZoneOuterBull:
		return "OUTER_BULL"
	case ZoneMiss:
		return "MISS"
	default:
		return ""
	}
}

// Multiplier returns 1, 2 or 3 for the numbered rings and 0 otherwise.
func (z Zone) Multiplier() int {
	switch z {
	case ZoneSingle:
		return 1
	case ZoneDouble:
		return 2
	case ZoneTriple:
		return 3
	default:
		return 0
	}
}

// Numbered reports whether the zone belongs to one of the 20 board segments.
func (z Zone) Numbered() bool {
	return z.Multiplier() > 0
}

// MarshalText encodes the zone as its wire code.
func (z Zone) MarshalText() ([]byte, error) {
	code := z.Code()
	if code == "" {
		return nil, fmt.Errorf("zone %d has no wire code", int(z))
	}
	return []byte(code), nil
}

// UnmarshalText decodes a wire code produced by MarshalText.
func (z *Zone) UnmarshalText(text []byte) error {
	zone, err := ParseZone(string(text))
	if err != nil {
		return err
	}
	*z = zone
	return nil
}

// ParseZone maps a wire code to a Zone.
func ParseZone(code string) (Zone, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "S":
		return ZoneSingle, nil
	case "D":
		return ZoneDouble, nil
	case "T":
		return ZoneTriple, nil
	case "BULL":
		return ZoneBull, nil
	case "OUTER_BULL":
		return ZoneOuterBull, nil
	case "MISS":
		return ZoneMiss, nil
	default:
		return ZoneUnspecified, fmt.Errorf("unknown zone code %q", code)
	}
}
