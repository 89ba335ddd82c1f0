package engine

import (
	"errors"
	"fmt"
)

// Reason codes for caller-fault rejections. Every rejected operation
// carries one of these so adapters can map it to their own signaling
// (HTTP status, exit code) without string matching.
const (
	CodeUnknownQuestion = "unknown_question"
	CodeAtStartOfFlow   = "at_start_of_flow"
	CodeMissingField    = "missing_field"
	CodeAuthRequired    = "auth_required"
)

// Rejection is a caller-fault error: the request was understood but
// refused, and no state was mutated.
type Rejection struct {
	Code string
	Msg  string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Code, r.Msg)
}

func reject(code, format string, args ...any) error {
	return &Rejection{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// AsRejection extracts a Rejection from err, if it is one.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
