package event

import (
	"caseflow/domain/state"

	"github.com/fundwit/go-commons/types"
)

const (
	EventCategoryCaseCreated     EventCategory = "CASE_CREATED"
	EventCategoryStateTransition EventCategory = "STATE_TRANSITION"
)

type EventCategory string

type Event struct {
	CaseID   types.ID `json:"caseId"`
	CaseDesc string   `json:"caseDesc"`

	EventCategory EventCategory `json:"eventCategory"`

	FromState state.State `json:"fromState"`
	ToState   state.State `json:"toState"`
	Notes     string      `json:"notes"`

	ActorID   types.ID `json:"actorId"`
	ActorName string   `json:"actorName"`
}

type EventRecord struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	Event

	Timestamp types.Timestamp `json:"timestamp" sql:"type:DATETIME(6)"`
	Synced    bool            `json:"synced"`
}

func (r *EventRecord) TableName() string {
	return "events"
}
