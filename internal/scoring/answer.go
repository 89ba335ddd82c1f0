package scoring

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// AnswerKind discriminates the two wire shapes an answer can take.
type AnswerKind int

const (
	KindNumber AnswerKind = iota
	KindText
)

// Answer is the tagged union of raw answer values: a number for
// sliders, a string for yes-no targets and choice keys. Validation
// against the question's declared type happens in the scorer, not here.
type Answer struct {
	kind AnswerKind
	num  float64
	text string
}

// Number builds a numeric answer.
func Number(v float64) Answer {
	return Answer{kind: KindNumber, num: v}
}

// Text builds a string answer.
func Text(s string) Answer {
	return Answer{kind: KindText, text: s}
}

// Kind returns the answer's shape.
func (a Answer) Kind() AnswerKind {
	return a.kind
}

// Number returns the numeric value. The second result is false for
// text answers that do not parse as a number.
func (a Answer) Number() (float64, bool) {
	if a.kind == KindNumber {
		return a.num, true
	}
	if v, err := strconv.ParseFloat(a.text, 64); err == nil {
		return v, true
	}
	return 0, false
}

// String returns the stringified value, matching how choice keys and
// yes-no targets are compared.
func (a Answer) String() string {
	if a.kind == KindNumber {
		return strconv.FormatFloat(a.num, 'f', -1, 64)
	}
	return a.text
}

// MarshalJSON stores the raw value in its original shape.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.kind == KindNumber {
		return json.Marshal(a.num)
	}
	return json.Marshal(a.text)
}

// UnmarshalJSON accepts a JSON number, string or bool. Booleans are
// stringified so legacy payloads still score deterministically.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case float64:
		*a = Number(val)
	case string:
		*a = Text(val)
	case bool:
		*a = Text(strconv.FormatBool(val))
	default:
		return fmt.Errorf("unsupported answer value %T", v)
	}
	return nil
}

// AnswerSet maps question IDs to their raw answers.
type AnswerSet map[string]Answer

// Clone returns a shallow copy of the answer set.
func (s AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
