// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ResponseEvent is the predicate function for responseevent builders.
type ResponseEvent func(*sql.Selector)

// SessionState is the predicate function for sessionstate builders.
type SessionState func(*sql.Selector)

// SummaryRequestEvent is the predicate function for summaryrequestevent builders.
type SummaryRequestEvent func(*sql.Selector)
