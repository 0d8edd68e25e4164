package event

import (
	"caseflow/domain/state"
	"caseflow/idgen"
	"caseflow/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

var eventIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

// CreateEvent persists an event record on the given db handle. Invoked
// inside the same transaction as the state change it describes, so the
// event and the change commit or roll back together.
func CreateEvent(caseId types.ID, caseDesc string, category EventCategory,
	fromState, toState state.State, notes string,
	identity *session.Identity, timestamp types.Timestamp, db *gorm.DB) (*EventRecord, error) {

	record := EventRecord{
		ID: idgen.NextID(eventIdWorker),
		Event: Event{
			CaseID:   caseId,
			CaseDesc: caseDesc,

			EventCategory: category,

			FromState: fromState,
			ToState:   toState,
			Notes:     notes,

			ActorID:   identity.ID,
			ActorName: identity.Name,
		},
		Synced:    false,
		Timestamp: timestamp,
	}
	if err := EventPersistCreateFunc(&record, db); err != nil {
		return nil, err
	}
	return &record, nil
}
