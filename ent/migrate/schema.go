// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ResponseEventsColumns holds the columns for the "response_events" table.
	ResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "section_id", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
	}
	// ResponseEventsTable holds the schema information for the "response_events" table.
	ResponseEventsTable = &schema.Table{
		Name:       "response_events",
		Columns:    ResponseEventsColumns,
		PrimaryKey: []*schema.Column{ResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "responseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[1]},
			},
			{
				Name:    "responseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[2]},
			},
			{
				Name:    "responseevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[3]},
			},
			{
				Name:    "responseevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[4]},
			},
		},
	}
	// SessionStatesColumns holds the columns for the "session_states" table.
	SessionStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "section_scores", Type: field.TypeJSON},
		{Name: "last_question_id", Type: field.TypeString},
		{Name: "catalog_version", Type: field.TypeString},
		{Name: "summary", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionStatesTable holds the schema information for the "session_states" table.
	SessionStatesTable = &schema.Table{
		Name:       "session_states",
		Columns:    SessionStatesColumns,
		PrimaryKey: []*schema.Column{SessionStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionstate_user_id",
				Unique:  true,
				Columns: []*schema.Column{SessionStatesColumns[1]},
			},
		},
	}
	// SummaryRequestEventsColumns holds the columns for the "summary_request_events" table.
	SummaryRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// SummaryRequestEventsTable holds the schema information for the "summary_request_events" table.
	SummaryRequestEventsTable = &schema.Table{
		Name:       "summary_request_events",
		Columns:    SummaryRequestEventsColumns,
		PrimaryKey: []*schema.Column{SummaryRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "summaryrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SummaryRequestEventsColumns[1]},
			},
			{
				Name:    "summaryrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SummaryRequestEventsColumns[2]},
			},
			{
				Name:    "summaryrequestevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SummaryRequestEventsColumns[3]},
			},
			{
				Name:    "summaryrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{SummaryRequestEventsColumns[4]},
			},
			{
				Name:    "summaryrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{SummaryRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ResponseEventsTable,
		SessionStatesTable,
		SummaryRequestEventsTable,
	}
)

func init() {
}
