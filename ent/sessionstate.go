// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/infinitelife/pulse/ent/sessionstate"
)

// SessionState is the model entity for the SessionState schema.
type SessionState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Token subject identifying the user
	UserID string `json:"user_id,omitempty"`
	// Raw answer values keyed by question ID
	Answers map[string]interface{} `json:"answers,omitempty"`
	// Raw earned points keyed by section ID
	SectionScores map[string]float64 `json:"section_scores,omitempty"`
	// Next question to present, or the completed marker
	LastQuestionID string `json:"last_question_id,omitempty"`
	// Catalog version the answers were recorded against
	CatalogVersion string `json:"catalog_version,omitempty"`
	// Generated self-discovery summary, absent until requested
	Summary map[string]interface{} `json:"summary,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionstate.FieldAnswers, sessionstate.FieldSectionScores, sessionstate.FieldSummary:
			values[i] = new([]byte)
		case sessionstate.FieldID:
			values[i] = new(sql.NullInt64)
		case sessionstate.FieldUserID, sessionstate.FieldLastQuestionID, sessionstate.FieldCatalogVersion:
			values[i] = new(sql.NullString)
		case sessionstate.FieldCreatedAt, sessionstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionState fields.
func (_m *SessionState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionstate.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case sessionstate.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case sessionstate.FieldSectionScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field section_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SectionScores); err != nil {
					return fmt.Errorf("unmarshal field section_scores: %w", err)
				}
			}
		case sessionstate.FieldLastQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_question_id", values[i])
			} else if value.Valid {
				_m.LastQuestionID = value.String
			}
		case sessionstate.FieldCatalogVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field catalog_version", values[i])
			} else if value.Valid {
				_m.CatalogVersion = value.String
			}
		case sessionstate.FieldSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Summary); err != nil {
					return fmt.Errorf("unmarshal field summary: %w", err)
				}
			}
		case sessionstate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sessionstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionState.
// This includes values selected through modifiers, order, etc.
func (_m *SessionState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionState.
// Note that you need to call SessionState.Unwrap() before calling this method if this SessionState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionState) Update() *SessionStateUpdateOne {
	return NewSessionStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionState) Unwrap() *SessionState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionState) String() string {
	var builder strings.Builder
	builder.WriteString("SessionState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("section_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.SectionScores))
	builder.WriteString(", ")
	builder.WriteString("last_question_id=")
	builder.WriteString(_m.LastQuestionID)
	builder.WriteString(", ")
	builder.WriteString("catalog_version=")
	builder.WriteString(_m.CatalogVersion)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.Summary))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionStates is a parsable slice of SessionState.
type SessionStates []*SessionState
