// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/infinitelife/pulse/ent/responseevent"
	"github.com/infinitelife/pulse/ent/schema"
	"github.com/infinitelife/pulse/ent/sessionstate"
	"github.com/infinitelife/pulse/ent/summaryrequestevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	sessionstateFields := schema.SessionState{}.Fields()
	_ = sessionstateFields
	// sessionstateDescCreatedAt is the schema descriptor for created_at field.
	sessionstateDescCreatedAt := sessionstateFields[6].Descriptor()
	// sessionstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionstate.DefaultCreatedAt = sessionstateDescCreatedAt.Default.(func() time.Time)
	// sessionstateDescUpdatedAt is the schema descriptor for updated_at field.
	sessionstateDescUpdatedAt := sessionstateFields[7].Descriptor()
	// sessionstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionstate.DefaultUpdatedAt = sessionstateDescUpdatedAt.Default.(func() time.Time)
	// sessionstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionstate.UpdateDefaultUpdatedAt = sessionstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	summaryrequesteventMixin := schema.SummaryRequestEvent{}.Mixin()
	summaryrequesteventMixinFields0 := summaryrequesteventMixin[0].Fields()
	_ = summaryrequesteventMixinFields0
	summaryrequesteventFields := schema.SummaryRequestEvent{}.Fields()
	_ = summaryrequesteventFields
	// summaryrequesteventDescTimestamp is the schema descriptor for timestamp field.
	summaryrequesteventDescTimestamp := summaryrequesteventMixinFields0[1].Descriptor()
	// summaryrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	summaryrequestevent.DefaultTimestamp = summaryrequesteventDescTimestamp.Default.(func() time.Time)
	// summaryrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	summaryrequesteventDescInputTokens := summaryrequesteventFields[3].Descriptor()
	// summaryrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	summaryrequestevent.DefaultInputTokens = summaryrequesteventDescInputTokens.Default.(int)
	// summaryrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	summaryrequesteventDescOutputTokens := summaryrequesteventFields[4].Descriptor()
	// summaryrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	summaryrequestevent.DefaultOutputTokens = summaryrequesteventDescOutputTokens.Default.(int)
	// summaryrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	summaryrequesteventDescLatencyMs := summaryrequesteventFields[5].Descriptor()
	// summaryrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	summaryrequestevent.DefaultLatencyMs = summaryrequesteventDescLatencyMs.Default.(int64)
	// summaryrequesteventDescErrorMessage is the schema descriptor for error_message field.
	summaryrequesteventDescErrorMessage := summaryrequesteventFields[7].Descriptor()
	// summaryrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	summaryrequestevent.DefaultErrorMessage = summaryrequesteventDescErrorMessage.Default.(string)
}
