package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names shared by the migration and the query builders.
const (
	llmEventsTable        = "llm_request_events"
	assessmentEventsTable = "assessment_events"

	colID        = "id"
	colSequence  = "sequence"
	colTimestamp = "timestamp"
)

// eventColumns are the columns every event table starts with.
func eventColumns() []*schema.Column {
	return []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64, Unique: true},
		{Name: colTimestamp, Type: field.TypeTime},
	}
}

const textSize = 2147483647

var (
	llmRequestEventsColumns = append(eventColumns(),
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Size: textSize, Default: ""},
		&schema.Column{Name: "request_body", Type: field.TypeString, Size: textSize, Default: ""},
		&schema.Column{Name: "response_body", Type: field.TypeString, Size: textSize, Default: ""},
	)
	llmRequestEventsSchema = &schema.Table{
		Name:       llmEventsTable,
		Columns:    llmRequestEventsColumns,
		PrimaryKey: []*schema.Column{llmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{llmRequestEventsColumns[5]}},
			{Name: "llmrequestevent_model", Columns: []*schema.Column{llmRequestEventsColumns[4]}},
		},
	}

	assessmentEventsColumns = append(eventColumns(),
		&schema.Column{Name: "assessment_id", Type: field.TypeString, Unique: true},
		&schema.Column{Name: "label", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "responses", Type: field.TypeJSON},
		&schema.Column{Name: "scores", Type: field.TypeJSON},
		&schema.Column{Name: "rule_verdict", Type: field.TypeString},
		&schema.Column{Name: "classifier_verdict", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "classifier_available", Type: field.TypeBool},
		&schema.Column{Name: "final_verdict", Type: field.TypeString},
		&schema.Column{Name: "source", Type: field.TypeString},
		&schema.Column{Name: "safety", Type: field.TypeInt},
		&schema.Column{Name: "crisis_shown", Type: field.TypeBool},
	)
	assessmentEventsSchema = &schema.Table{
		Name:       assessmentEventsTable,
		Columns:    assessmentEventsColumns,
		PrimaryKey: []*schema.Column{assessmentEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "assessmentevent_final_verdict", Columns: []*schema.Column{assessmentEventsColumns[10]}},
		},
	}

	// tables holds every table the store migrates.
	tables = []*schema.Table{
		llmRequestEventsSchema,
		assessmentEventsSchema,
	}
)
