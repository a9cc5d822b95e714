package audit

import (
	"encoding/json"
	"fmt"
)

// Status is the compliance state of one control. It is a closed enum:
// every scoring and prioritization site switches exhaustively over it, so
// an unrecognized value can never silently score as zero.
type Status int

const (
	StatusNotAssessed Status = iota
	StatusCompliant
	StatusPartial
	StatusNonCompliant
	StatusNotApplicable
)

// InvalidStatusError reports a status value outside the five-state enum.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status %q (want compliant|partial|non_compliant|not_applicable|not_assessed)", e.Value)
}

// ParseStatus converts the wire form of a status into the enum.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "compliant":
		return StatusCompliant, nil
	case "partial":
		return StatusPartial, nil
	case "non_compliant":
		return StatusNonCompliant, nil
	case "not_applicable":
		return StatusNotApplicable, nil
	case "not_assessed":
		return StatusNotAssessed, nil
	}
	return StatusNotAssessed, &InvalidStatusError{Value: s}
}

func (s Status) String() string {
	switch s {
	case StatusCompliant:
		return "compliant"
	case StatusPartial:
		return "partial"
	case StatusNonCompliant:
		return "non_compliant"
	case StatusNotApplicable:
		return "not_applicable"
	case StatusNotAssessed:
		return "not_assessed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) valid() bool {
	switch s {
	case StatusCompliant, StatusPartial, StatusNonCompliant, StatusNotApplicable, StatusNotAssessed:
		return true
	}
	return false
}

// points returns the score contribution of a status and whether the
// control counts toward the denominator. Exhaustive over the enum.
func (s Status) points() (value float64, counted bool) {
	switch s {
	case StatusCompliant:
		return 100, true
	case StatusPartial:
		return 50, true
	case StatusNonCompliant:
		return 0, true
	case StatusNotAssessed:
		return 0, true
	case StatusNotApplicable:
		return 0, false
	}
	panic(fmt.Sprintf("points: invalid status %d", int(s)))
}

// MarshalJSON encodes a Status as its wire string.
func (s Status) MarshalJSON() ([]byte, error) {
	if !s.valid() {
		return nil, &InvalidStatusError{Value: s.String()}
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a Status from its wire string.
func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalYAML encodes a Status as its wire string.
func (s Status) MarshalYAML() (interface{}, error) {
	if !s.valid() {
		return nil, &InvalidStatusError{Value: s.String()}
	}
	return s.String(), nil
}

// UnmarshalYAML decodes a Status from its wire string in YAML documents
// such as manual assessment files.
func (s *Status) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	v, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
