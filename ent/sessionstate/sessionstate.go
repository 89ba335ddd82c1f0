// Code generated by ent, DO NOT EDIT.

package sessionstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionstate type in the database.
	Label = "session_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldSectionScores holds the string denoting the section_scores field in the database.
	FieldSectionScores = "section_scores"
	// FieldLastQuestionID holds the string denoting the last_question_id field in the database.
	FieldLastQuestionID = "last_question_id"
	// FieldCatalogVersion holds the string denoting the catalog_version field in the database.
	FieldCatalogVersion = "catalog_version"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the sessionstate in the database.
	Table = "session_states"
)

// Columns holds all SQL columns for sessionstate fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldAnswers,
	FieldSectionScores,
	FieldLastQuestionID,
	FieldCatalogVersion,
	FieldSummary,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SessionState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByLastQuestionID orders the results by the last_question_id field.
func ByLastQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastQuestionID, opts...).ToFunc()
}

// ByCatalogVersion orders the results by the catalog_version field.
func ByCatalogVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCatalogVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
