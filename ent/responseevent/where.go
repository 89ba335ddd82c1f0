// Code generated by ent, DO NOT EDIT.

package responseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/infinitelife/pulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldQuestionID, v))
}

// SectionID applies equality check predicate on the "section_id" field. It's identical to SectionIDEQ.
func SectionID(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSectionID, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldAnswer, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldScore, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// SectionIDEQ applies the EQ predicate on the "section_id" field.
func SectionIDEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSectionID, v))
}

// SectionIDNEQ applies the NEQ predicate on the "section_id" field.
func SectionIDNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldSectionID, v))
}

// SectionIDIn applies the In predicate on the "section_id" field.
func SectionIDIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldSectionID, vs...))
}

// SectionIDNotIn applies the NotIn predicate on the "section_id" field.
func SectionIDNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldSectionID, vs...))
}

// SectionIDGT applies the GT predicate on the "section_id" field.
func SectionIDGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldSectionID, v))
}

// SectionIDGTE applies the GTE predicate on the "section_id" field.
func SectionIDGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldSectionID, v))
}

// SectionIDLT applies the LT predicate on the "section_id" field.
func SectionIDLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldSectionID, v))
}

// SectionIDLTE applies the LTE predicate on the "section_id" field.
func SectionIDLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldSectionID, v))
}

// SectionIDContains applies the Contains predicate on the "section_id" field.
func SectionIDContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldSectionID, v))
}

// SectionIDHasPrefix applies the HasPrefix predicate on the "section_id" field.
func SectionIDHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldSectionID, v))
}

// SectionIDHasSuffix applies the HasSuffix predicate on the "section_id" field.
func SectionIDHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldSectionID, v))
}

// SectionIDEqualFold applies the EqualFold predicate on the "section_id" field.
func SectionIDEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldSectionID, v))
}

// SectionIDContainsFold applies the ContainsFold predicate on the "section_id" field.
func SectionIDContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldSectionID, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldAnswer, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.NotPredicates(p))
}
