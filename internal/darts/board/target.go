package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Scoring values of the two bullseye rings.
const (
	BullValue      = 50
	OuterBullValue = 25
)

// ErrUnknownTarget indicates a label that does not name a board target.
var ErrUnknownTarget = errors.New("unknown target label")

// Target is one aimable or hittable region of the board.
//
// Number holds the board segment (1-20) for numbered zones. For the two
// bullseye rings it holds the ring's score (50 or 25) so stored records keep
// their original shape; Miss uses 0.
type Target struct {
	Zone   Zone
	Number int
	Label  string
	Value  int
}

var (
	// Bull is the inner bullseye, which counts as a double for finishing.
	Bull = Target{Zone: ZoneBull, Number: BullValue, Label: "Bull", Value: BullValue}
	// OuterBull is the 25 ring around the bullseye.
	OuterBull = Target{Zone: ZoneOuterBull, Number: OuterBullValue, Label: "25", Value: OuterBullValue}
	// Miss is a dart that scores nothing.
	Miss = Target{Zone: ZoneMiss, Number: 0, Label: "Miss", Value: 0}
)

// NewTarget builds a target from its zone and number.
//
// Numbered zones require a number in [1,20]; a bad number is a caller bug and
// panics. The number is ignored for the bullseye rings and Miss.
func NewTarget(zone Zone, number int) Target {
	switch zone {
	case ZoneBull:
		return Bull
	case ZoneOuterBull:
		return OuterBull
	case ZoneMiss:
		return Miss
	}
	return Target{
		Zone:   zone,
		Number: number,
		Label:  zone.Code() + strconv.Itoa(number),
		Value:  ValueOf(zone, number),
	}
}

// Single returns the single ring of number.
func Single(number int) Target { return NewTarget(ZoneSingle, number) }

// Double returns the double ring of number.
func Double(number int) Target { return NewTarget(ZoneDouble, number) }

// Triple returns the treble ring of number.
func Triple(number int) Target { return NewTarget(ZoneTriple, number) }

// ValueOf returns the score of a dart landing in zone on number.
func ValueOf(zone Zone, number int) int {
	switch zone {
	case ZoneBull:
		return BullValue
	case ZoneOuterBull:
		return OuterBullValue
	case ZoneMiss:
		return 0
	case ZoneSingle, ZoneDouble, ZoneTriple:
		if !OnBoard(number) {
			panic(fmt.Sprintf("board: number %d is not a board segment", number))
		}
		return number * zone.Multiplier()
	default:
		panic(fmt.Sprintf("board: zone %v has no value", zone))
	}
}

// Equal reports whether both targets name the same zone and number.
func (t Target) Equal(other Target) bool {
	return t.Zone == other.Zone && t.Number == other.Number
}

// IsFinishing reports whether a dart here may end a leg.
func (t Target) IsFinishing() bool {
	return t.Zone == ZoneDouble || t.Zone == ZoneBull
}

func (t Target) String() string {
	return t.Label
}

type targetJSON struct {
	Zone   Zone   `json:"zone"`
	Number int    `json:"number"`
	Label  string `json:"label"`
	Value  int    `json:"value"`
}

// MarshalJSON encodes the target in the stored record shape.
func (t Target) MarshalJSON() ([]byte, error) {
	return json.Marshal(targetJSON{Zone: t.Zone, Number: t.Number, Label: t.Label, Value: t.Value})
}

// UnmarshalJSON decodes a stored target; label and value are recomputed
// from zone and number.
func (t *Target) UnmarshalJSON(data []byte) error {
	var raw targetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Zone.Numbered() && !OnBoard(raw.Number) {
		return fmt.Errorf("target number %d is not a board segment", raw.Number)
	}
	*t = NewTarget(raw.Zone, raw.Number)
	return nil
}

// ParseTarget resolves a label such as "T20", "D16", "S5", "Bull", "25" or
// "Miss". "D25"/"DB" name the bullseye and "S25"/"OB" the outer bull.
func ParseTarget(label string) (Target, error) {
	value := strings.ToUpper(strings.TrimSpace(label))
	switch value {
	case "BULL", "D25", "DB", "BULLSEYE":
		return Bull, nil
	case "25", "S25", "OB":
		return OuterBull, nil
	case "MISS":
		return Miss, nil
	case "":
		return Target{}, fmt.Errorf("%w: empty label", ErrUnknownTarget)
	}

	var zone Zone
	switch value[0] {
	case 'S':
		zone = ZoneSingle
	case 'D':
		zone = ZoneDouble
	case 'T':
		zone = ZoneTriple
	default:
		return Target{}, fmt.Errorf("%w: %q", ErrUnknownTarget, label)
	}
	number, err := strconv.Atoi(value[1:])
	if err != nil || !OnBoard(number) {
		return Target{}, fmt.Errorf("%w: %q", ErrUnknownTarget, label)
	}
	return NewTarget(zone, number), nil
}

// MustParseTarget parses label and panics on error. Intended for static tables.
func MustParseTarget(label string) Target {
	target, err := ParseTarget(label)
	if err != nil {
		panic("board: MustParseTarget: " + err.Error())
	}
	return target
}
