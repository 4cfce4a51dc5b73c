package cyclecast

import (
	"encoding"
	"encoding/json"
	"fmt"
	"time"
)

// Defaults used whenever the history carries no usable signal.
const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

// Cycle lengths outside [MinCycleLength, MaxCycleLength] days are treated as
// logging noise (duplicate entries, missed months) and excluded from the
// statistics.
const (
	MinCycleLength = 10
	MaxCycleLength = 60
)

// CyclePrediction is the engine's output value. It is rebuilt from scratch on
// every call and has no lifecycle of its own; recomputation is the only
// update mechanism.
type CyclePrediction struct {
	PredictedNextStart        time.Time  `json:"predicted_next_start"`
	PredictedPeriodLengthDays int        `json:"predicted_period_length_days"`
	PredictedCycleLengthDays  int        `json:"predicted_cycle_length_days"`
	EstimatedOvulationDate    time.Time  `json:"estimated_ovulation_date"`
	FertileWindowStart        time.Time  `json:"fertile_window_start"`
	FertileWindowEnd          time.Time  `json:"fertile_window_end"`
	Confidence                Confidence `json:"confidence"`
	IsIrregular               bool       `json:"is_irregular"`
}

// Confidence is the coarse reliability tier attached to a prediction.
type Confidence int

const (
	ConfidenceLow    Confidence = iota + 1 // fewer than 3 samples, or irregular history
	ConfidenceMedium                       // 3-5 regular samples
	ConfidenceHigh                         // 6+ regular samples
)

var (
	confidenceNames = [...]string{ConfidenceLow: "low", ConfidenceMedium: "medium", ConfidenceHigh: "high"}

	confidenceByName = map[string]Confidence{
		"low":    ConfidenceLow,
		"medium": ConfidenceMedium,
		"high":   ConfidenceHigh,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Confidence(0)
	_ json.Marshaler           = Confidence(0)
	_ json.Unmarshaler         = (*Confidence)(nil)
	_ encoding.TextMarshaler   = Confidence(0)
	_ encoding.TextUnmarshaler = (*Confidence)(nil)
)

// IsValid reports whether c is one of the three tiers.
func (c Confidence) IsValid() bool {
	return c >= ConfidenceLow && c <= ConfidenceHigh
}

// String returns "low", "medium" or "high"; "Confidence(n)" for invalid
// values.
func (c Confidence) String() string {
	if c.IsValid() {
		return confidenceNames[c]
	}
	return fmt.Sprintf("Confidence(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Confidence) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("cyclecast: invalid confidence: %d", int(c))
	}
	return []byte(confidenceNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Confidence) UnmarshalText(text []byte) error {
	v, ok := confidenceByName[string(text)]
	if !ok {
		return fmt.Errorf("cyclecast: invalid confidence: %q", text)
	}
	*c = v
	return nil
}

// MarshalJSON implements json.Marshaler. Confidence serializes as a JSON
// string.
func (c Confidence) MarshalJSON() ([]byte, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (c *Confidence) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cyclecast: invalid confidence: %s", data)
	}
	return c.UnmarshalText([]byte(s))
}

// Phase is the stage of the current cycle a given day falls in.
type Phase int

const (
	PhaseMenstrual Phase = iota + 1
	PhaseFollicular
	PhaseOvulation
	PhaseLuteal
)

var (
	phaseNames = [...]string{
		PhaseMenstrual:  "menstrual",
		PhaseFollicular: "follicular",
		PhaseOvulation:  "ovulation",
		PhaseLuteal:     "luteal",
	}

	phaseByName = map[string]Phase{
		"menstrual":  PhaseMenstrual,
		"follicular": PhaseFollicular,
		"ovulation":  PhaseOvulation,
		"luteal":     PhaseLuteal,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Phase(0)
	_ json.Marshaler           = Phase(0)
	_ json.Unmarshaler         = (*Phase)(nil)
	_ encoding.TextMarshaler   = Phase(0)
	_ encoding.TextUnmarshaler = (*Phase)(nil)
)

// IsValid reports whether p is one of the four phases.
func (p Phase) IsValid() bool {
	return p >= PhaseMenstrual && p <= PhaseLuteal
}

// String returns the phase name ("menstrual", "follicular", "ovulation",
// "luteal"); "Phase(n)" for invalid values.
func (p Phase) String() string {
	if p.IsValid() {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("cyclecast: invalid phase: %d", int(p))
	}
	return []byte(phaseNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(text []byte) error {
	v, ok := phaseByName[string(text)]
	if !ok {
		return fmt.Errorf("cyclecast: invalid phase: %q", text)
	}
	*p = v
	return nil
}

// MarshalJSON implements json.Marshaler. Phase serializes as a JSON string.
func (p Phase) MarshalJSON() ([]byte, error) {
	text, err := p.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (p *Phase) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cyclecast: invalid phase: %s", data)
	}
	return p.UnmarshalText([]byte(s))
}
