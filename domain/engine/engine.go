package engine

import (
	"context"

	"caseflow/domain"
	"caseflow/domain/flow"
	"caseflow/persistence"
	"caseflow/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

type EngineTraits interface {
	CreateCase(c *domain.CaseCreation, s *session.Context) (*domain.CaseDetail, error)
	DetailCase(id types.ID, s *session.Context) (*domain.CaseDetail, error)

	ApplyTransition(c *domain.TransitionCreation, s *session.Context) (*domain.TransitionRecord, error)
	ValidateTransition(q *domain.TransitionValidationQuery, s *session.Context) (*ValidationResult, error)
	CaseTransitions(caseId types.ID, s *session.Context) ([]AvailableTransition, error)

	QueryQueue(q *domain.CaseQueueQuery, s *session.Context) ([]domain.ApplicationCase, error)
}

// Engine owns the workflow semantics: transition validation, the atomic
// apply, and queue ordering. The registry is immutable after construction;
// the only shared mutable resource is the case store behind dataSource.
type Engine struct {
	dataSource *persistence.DataSourceManager
	registry   *flow.Registry
	facts      flow.Facts

	idWorker *sonyflake.Sonyflake
}

func NewEngine(ds *persistence.DataSourceManager, registry *flow.Registry, facts flow.Facts) *Engine {
	return &Engine{
		dataSource: ds,
		registry:   registry,
		facts:      facts,
		idWorker:   sonyflake.NewSonyflake(sonyflake.Settings{}),
	}
}

func (e *Engine) Registry() *flow.Registry {
	return e.registry
}

func sessionCtx(s *session.Context) context.Context {
	if s != nil && s.Context != nil {
		return s.Context
	}
	return context.Background()
}

// activeGormDB serves package-level operations running outside a request,
// like the index full-sync walk.
func activeGormDB() *gorm.DB {
	return persistence.ActiveDataSourceManager.GormDB(context.Background())
}
