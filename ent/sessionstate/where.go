// Code generated by ent, DO NOT EDIT.

package sessionstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/infinitelife/pulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionState {
	return predicate.SessionState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionState {
	return predicate.SessionState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldUserID, v))
}

// LastQuestionID applies equality check predicate on the "last_question_id" field. It's identical to LastQuestionIDEQ.
func LastQuestionID(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldLastQuestionID, v))
}

// CatalogVersion applies equality check predicate on the "catalog_version" field. It's identical to CatalogVersionEQ.
func CatalogVersion(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldCatalogVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldContainsFold(FieldUserID, v))
}

// LastQuestionIDEQ applies the EQ predicate on the "last_question_id" field.
func LastQuestionIDEQ(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldLastQuestionID, v))
}

// LastQuestionIDNEQ applies the NEQ predicate on the "last_question_id" field.
func LastQuestionIDNEQ(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldLastQuestionID, v))
}

// LastQuestionIDIn applies the In predicate on the "last_question_id" field.
func LastQuestionIDIn(vs ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldIn(FieldLastQuestionID, vs...))
}

// LastQuestionIDNotIn applies the NotIn predicate on the "last_question_id" field.
func LastQuestionIDNotIn(vs ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNotIn(FieldLastQuestionID, vs...))
}

// LastQuestionIDGT applies the GT predicate on the "last_question_id" field.
func LastQuestionIDGT(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGT(FieldLastQuestionID, v))
}

// LastQuestionIDGTE applies the GTE predicate on the "last_question_id" field.
func LastQuestionIDGTE(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGTE(FieldLastQuestionID, v))
}

// LastQuestionIDLT applies the LT predicate on the "last_question_id" field.
func LastQuestionIDLT(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLT(FieldLastQuestionID, v))
}

// LastQuestionIDLTE applies the LTE predicate on the "last_question_id" field.
func LastQuestionIDLTE(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLTE(FieldLastQuestionID, v))
}

// LastQuestionIDContains applies the Contains predicate on the "last_question_id" field.
func LastQuestionIDContains(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldContains(FieldLastQuestionID, v))
}

// LastQuestionIDHasPrefix applies the HasPrefix predicate on the "last_question_id" field.
func LastQuestionIDHasPrefix(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldHasPrefix(FieldLastQuestionID, v))
}

// LastQuestionIDHasSuffix applies the HasSuffix predicate on the "last_question_id" field.
func LastQuestionIDHasSuffix(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldHasSuffix(FieldLastQuestionID, v))
}

// LastQuestionIDEqualFold applies the EqualFold predicate on the "last_question_id" field.
func LastQuestionIDEqualFold(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEqualFold(FieldLastQuestionID, v))
}

// LastQuestionIDContainsFold applies the ContainsFold predicate on the "last_question_id" field.
func LastQuestionIDContainsFold(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldContainsFold(FieldLastQuestionID, v))
}

// CatalogVersionEQ applies the EQ predicate on the "catalog_version" field.
func CatalogVersionEQ(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldCatalogVersion, v))
}

// CatalogVersionNEQ applies the NEQ predicate on the "catalog_version" field.
func CatalogVersionNEQ(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldCatalogVersion, v))
}

// CatalogVersionIn applies the In predicate on the "catalog_version" field.
func CatalogVersionIn(vs ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldIn(FieldCatalogVersion, vs...))
}

// CatalogVersionNotIn applies the NotIn predicate on the "catalog_version" field.
func CatalogVersionNotIn(vs ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNotIn(FieldCatalogVersion, vs...))
}

// CatalogVersionGT applies the GT predicate on the "catalog_version" field.
func CatalogVersionGT(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGT(FieldCatalogVersion, v))
}

// CatalogVersionGTE applies the GTE predicate on the "catalog_version" field.
func CatalogVersionGTE(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGTE(FieldCatalogVersion, v))
}

// CatalogVersionLT applies the LT predicate on the "catalog_version" field.
func CatalogVersionLT(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLT(FieldCatalogVersion, v))
}

// CatalogVersionLTE applies the LTE predicate on the "catalog_version" field.
func CatalogVersionLTE(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLTE(FieldCatalogVersion, v))
}

// CatalogVersionContains applies the Contains predicate on the "catalog_version" field.
func CatalogVersionContains(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldContains(FieldCatalogVersion, v))
}

// CatalogVersionHasPrefix applies the HasPrefix predicate on the "catalog_version" field.
func CatalogVersionHasPrefix(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldHasPrefix(FieldCatalogVersion, v))
}

// CatalogVersionHasSuffix applies the HasSuffix predicate on the "catalog_version" field.
func CatalogVersionHasSuffix(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldHasSuffix(FieldCatalogVersion, v))
}

// CatalogVersionEqualFold applies the EqualFold predicate on the "catalog_version" field.
func CatalogVersionEqualFold(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEqualFold(FieldCatalogVersion, v))
}

// CatalogVersionContainsFold applies the ContainsFold predicate on the "catalog_version" field.
func CatalogVersionContainsFold(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldContainsFold(FieldCatalogVersion, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.SessionState {
	return predicate.SessionState(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.SessionState {
	return predicate.SessionState(sql.FieldNotNull(FieldSummary))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionState) predicate.SessionState {
	return predicate.SessionState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionState) predicate.SessionState {
	return predicate.SessionState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionState) predicate.SessionState {
	return predicate.SessionState(sql.NotPredicates(p))
}
