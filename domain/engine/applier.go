package engine

import (
	"errors"
	"fmt"

	"caseflow/bizerror"
	"caseflow/domain"
	"caseflow/domain/state"
	"caseflow/event"
	"caseflow/idgen"
	"caseflow/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
)

var (
	LoadCaseFunc = loadCase
)

// ApplyTransition atomically moves a case to the target state and appends
// the history record. The case state is always re-derived from the store
// inside the transaction; a caller-supplied "current state" is never
// trusted. Exactly one of two racing callers wins: the loser's version
// check affects zero rows and fails with ErrConcurrentModification.
func (e *Engine) ApplyTransition(c *domain.TransitionCreation, s *session.Context) (*domain.TransitionRecord, error) {
	if s == nil || s.Identity.ID == 0 {
		return nil, bizerror.ErrUnauthenticated
	}
	target, err := state.Parse(c.ToState)
	if err != nil {
		return nil, err
	}

	now := types.CurrentTimestamp()
	var record *domain.TransitionRecord
	var ev *event.EventRecord
	replayed := false

	db := e.dataSource.GormDB(sessionCtx(s))
	err = db.Transaction(func(tx *gorm.DB) error {
		cs, err := LoadCaseFunc(tx, c.CaseID)
		if err != nil {
			return err
		}

		last, err := lastTransitionRecord(tx, cs.ID)
		if err != nil {
			return err
		}
		// idempotent replay: a duplicate submission returns the prior
		// result without touching the case again
		if c.IdempotencyKey != "" && last != nil && last.IdempotencyKey == c.IdempotencyKey {
			record = last
			replayed = true
			return nil
		}

		result, err := e.Validate(cs, target, s)
		if err != nil {
			return err
		}
		if !result.Valid {
			return &bizerror.TransitionRejected{Reasons: result.Reasons}
		}

		assignedTo := cs.AssignedTo
		if c.AssignedTo != 0 {
			assignedTo = c.AssignedTo
		}

		query := tx.Model(&domain.ApplicationCase{}).
			Where("id = ? AND version = ?", cs.ID, cs.Version).
			Update(map[string]interface{}{
				"current_state":    target,
				"assigned_to":      assignedTo,
				"state_begin_time": now,
				"version":          cs.Version + 1,
			})
		if query.Error != nil {
			return storeErr(query.Error)
		}
		if query.RowsAffected != 1 {
			return bizerror.ErrConcurrentModification
		}

		sequenceNumber := 1
		if last != nil {
			sequenceNumber = last.SequenceNumber + 1
		}

		rule, _ := e.registry.Rule(cs.CurrentState, target)
		snapshot := domain.Requirements{}
		for _, guard := range rule.Guards {
			snapshot = append(snapshot, guard.Requirement)
		}

		record = &domain.TransitionRecord{
			ID:             idgen.NextID(e.idWorker),
			CaseID:         cs.ID,
			SequenceNumber: sequenceNumber,

			FromState: cs.CurrentState,
			ToState:   target,

			ActorID:   s.Identity.ID,
			ActorName: s.Identity.Name,
			Notes:     c.Notes,

			IdempotencyKey:       c.IdempotencyKey,
			RequirementsSnapshot: snapshot,

			CreateTime: now,
		}
		if err := tx.Create(record).Error; err != nil {
			return storeErr(err)
		}

		ev, err = event.CreateEvent(cs.ID, cs.Identifier, event.EventCategoryStateTransition,
			cs.CurrentState, target, c.Notes, &s.Identity, now, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !replayed && ev != nil && event.DispatchFunc != nil {
		event.DispatchFunc(ev)
	}

	return record, nil
}

func loadCase(db *gorm.DB, id types.ID) (*domain.ApplicationCase, error) {
	cs := domain.ApplicationCase{}
	if err := db.Where(&domain.ApplicationCase{ID: id}).First(&cs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr(err)
	}
	return &cs, nil
}

func lastTransitionRecord(db *gorm.DB, caseId types.ID) (*domain.TransitionRecord, error) {
	record := domain.TransitionRecord{}
	err := db.Where(&domain.TransitionRecord{CaseID: caseId}).
		Order("sequence_number DESC").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &record, nil
}

// storeErr marks a case-store I/O failure as retryable. Record-not-found is
// never a store failure and must be handled before wrapping.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", bizerror.ErrStoreUnavailable, err)
}
