package engine

import (
	"caseflow/bizerror"
	"caseflow/domain"
	"caseflow/domain/state"
	"caseflow/event"
	"caseflow/idgen"
	"caseflow/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
)

const DefaultPriority = 3

// CreateCase opens a new application case in DRAFT. Everything after that
// goes through ApplyTransition only.
func (e *Engine) CreateCase(c *domain.CaseCreation, s *session.Context) (*domain.CaseDetail, error) {
	if s == nil || s.Identity.ID == 0 {
		return nil, bizerror.ErrUnauthenticated
	}

	priority := c.Priority
	if priority == 0 {
		priority = DefaultPriority
	}

	now := types.CurrentTimestamp()
	detail := &domain.CaseDetail{
		ApplicationCase: domain.ApplicationCase{
			ID: idgen.NextID(e.idWorker),

			CurrentState: state.Draft,
			Priority:     priority,

			SlaDeadline:    c.SlaDeadline,
			CreateTime:     now,
			StateBeginTime: now,
			Version:        0,
		},
		History: []domain.TransitionRecord{},
	}
	detail.Identifier = "HS-" + detail.ID.String()

	var ev *event.EventRecord
	db := e.dataSource.GormDB(sessionCtx(s))
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&detail.ApplicationCase).Error; err != nil {
			return storeErr(err)
		}
		var err error
		ev, err = event.CreateEvent(detail.ID, detail.Identifier, event.EventCategoryCaseCreated,
			"", state.Draft, "", &s.Identity, now, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if ev != nil && event.DispatchFunc != nil {
		event.DispatchFunc(ev)
	}

	return detail, nil
}

func (e *Engine) DetailCase(id types.ID, s *session.Context) (*domain.CaseDetail, error) {
	if s == nil || s.Identity.ID == 0 {
		return nil, bizerror.ErrUnauthenticated
	}

	db := e.dataSource.GormDB(sessionCtx(s))
	c, err := LoadCaseFunc(db, id)
	if err != nil {
		return nil, err
	}

	history := []domain.TransitionRecord{}
	if err := db.Where(&domain.TransitionRecord{CaseID: id}).
		Order("sequence_number ASC").Find(&history).Error; err != nil {
		return nil, storeErr(err)
	}

	return &domain.CaseDetail{ApplicationCase: *c, History: history}, nil
}

// LoadCases pages through all cases, oldest id first. Used by the index
// full-sync walk.
func LoadCases(page, size int) ([]domain.ApplicationCase, error) {
	cases := []domain.ApplicationCase{}
	db := activeGormDB()
	offset := (page - 1) * size
	if offset < 0 {
		offset = 0
	}
	if err := db.Order("id ASC").Offset(offset).Limit(size).Find(&cases).Error; err != nil {
		return nil, storeErr(err)
	}
	return cases, nil
}

var LoadCasesFunc = LoadCases
