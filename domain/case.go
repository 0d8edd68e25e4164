package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"caseflow/domain/state"

	"github.com/fundwit/go-commons/types"
)

// ApplicationCase is the workflow projection of a housing-subsidy request.
// It is created once in DRAFT by the intake flow and mutated only through
// the workflow engine; it is never physically deleted.
type ApplicationCase struct {
	ID         types.ID `json:"id" gorm:"primary_key"`
	Identifier string   `json:"identifier"`

	CurrentState state.State `json:"currentState"`
	AssignedTo   types.ID    `json:"assignedTo"` // zero means unassigned
	Priority     int         `json:"priority"`   // 1 (urgent) .. 5 (lowest)

	SlaDeadline    types.Timestamp `json:"slaDeadline" sql:"type:DATETIME(6)"`
	CreateTime     types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
	StateBeginTime types.Timestamp `json:"stateBeginTime" sql:"type:DATETIME(6)"`

	// Version is compared on every state commit to detect concurrent writers.
	Version int `json:"version"`
}

func (c *ApplicationCase) TableName() string {
	return "cases"
}

// TransitionRecord is an immutable history fact, appended exactly once per
// successful transition and keyed (case_id, sequence_number).
type TransitionRecord struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	CaseID         types.ID `json:"caseId" gorm:"unique_index:uix_case_seq"`
	SequenceNumber int      `json:"sequenceNumber" gorm:"unique_index:uix_case_seq"`

	FromState state.State `json:"fromState"`
	ToState   state.State `json:"toState"`

	ActorID   types.ID `json:"actorId"`
	ActorName string   `json:"actorName"`
	Notes     string   `json:"notes"`

	IdempotencyKey       string       `json:"idempotencyKey"`
	RequirementsSnapshot Requirements `json:"requirementsSnapshot" sql:"type:TEXT"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

func (r *TransitionRecord) TableName() string {
	return "transition_records"
}

// Requirements records the guard requirements that were in force (and
// satisfied) when the transition was applied.
type Requirements []string

func (t Requirements) Value() (driver.Value, error) {
	jsonBytes, err := json.Marshal(&t)
	if err != nil {
		return nil, err
	}
	return string(jsonBytes), nil
}

func (t *Requirements) Scan(v interface{}) error {
	jsonString, ok := v.(string)
	if !ok {
		jsonByte, ok := v.([]byte)
		if !ok {
			return fmt.Errorf("type is neither string nor []byte: %T %v", v, v)
		}
		jsonString = string(jsonByte)
	}
	return json.Unmarshal([]byte(jsonString), t)
}

type CaseDetail struct {
	ApplicationCase

	History []TransitionRecord `json:"history" gorm:"-"`
}

type CaseCreation struct {
	Priority    int             `json:"priority" validate:"min=0,max=5"`
	SlaDeadline types.Timestamp `json:"slaDeadline"`
}

type TransitionCreation struct {
	CaseID  types.ID `json:"caseId" validate:"required"`
	ToState string   `json:"toState" validate:"required"`

	Notes          string   `json:"notes"`
	AssignedTo     types.ID `json:"assignedTo"`
	IdempotencyKey string   `json:"idempotencyKey"`
}

type TransitionValidationQuery struct {
	CaseID  types.ID `json:"caseId" validate:"required"`
	ToState string   `json:"toState" validate:"required"`
}

type CaseQueueQuery struct {
	States []string `form:"states"`
}
