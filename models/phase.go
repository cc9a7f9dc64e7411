package models

import "fmt"

// OverflowPhase is the layout state of a single sub-page.
//
// A sub-page moves Resetting -> Measuring -> Applying -> Settled and returns
// to Resetting when its content or the viewport changes.
type OverflowPhase int

const (
	// PhaseResetting asks for the sub-page to be rendered with all the
	// remaining content so the true overflow can be measured.
	PhaseResetting OverflowPhase = iota
	// PhaseMeasuring waits for the renderer to report the overflow offset.
	PhaseMeasuring
	// PhaseApplying holds a reported offset that has not been applied yet.
	PhaseApplying
	// PhaseSettled means the sub-page boundary is final until reset.
	PhaseSettled
)

var phaseNames = [...]string{"resetting", "measuring", "applying", "settled"}

func (p OverflowPhase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("OverflowPhase(%d)", int(p))
	}
	return phaseNames[p]
}

// MarshalText implements [encoding.TextMarshaler].
func (p OverflowPhase) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(phaseNames) {
		return nil, fmt.Errorf("invalid overflow phase %d", int(p))
	}
	return []byte(phaseNames[p]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *OverflowPhase) UnmarshalText(text []byte) error {
	for i, name := range phaseNames {
		if name == string(text) {
			*p = OverflowPhase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown overflow phase %q", string(text))
}
