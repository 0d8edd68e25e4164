package engine

import (
	"caseflow/bizerror"
	"caseflow/domain"
	"caseflow/domain/flow"
	"caseflow/domain/state"
	"caseflow/session"
)

// QueryQueue lists the cases competing for an actor pool, most urgent
// first, then oldest, with id as the deterministic tie-break. States the
// actor holds no serving role for are silently filtered out.
func (e *Engine) QueryQueue(q *domain.CaseQueueQuery, s *session.Context) ([]domain.ApplicationCase, error) {
	if s == nil || s.Identity.ID == 0 {
		return nil, bizerror.ErrUnauthenticated
	}

	servable := []state.State{}
	for _, raw := range q.States {
		st, err := state.Parse(raw)
		if err != nil {
			return nil, err
		}
		if e.servableBy(st, s) {
			servable = append(servable, st)
		}
	}
	if len(servable) == 0 {
		return []domain.ApplicationCase{}, nil
	}

	cases := []domain.ApplicationCase{}
	db := e.dataSource.GormDB(sessionCtx(s))
	if err := db.Where("current_state in (?)", servable).
		Order("priority ASC, create_time ASC, id ASC").Find(&cases).Error; err != nil {
		return nil, storeErr(err)
	}
	return cases, nil
}

// servableBy reports whether the actor holds a role allowed on at least
// one outbound rule of the state.
func (e *Engine) servableBy(st state.State, s *session.Context) bool {
	if s.Perms.HasAnyRole(flow.OverrideRoles) {
		return true
	}
	for _, rule := range e.registry.RulesFrom(st) {
		if s.Perms.HasAnyRole(rule.AllowedRoles) {
			return true
		}
	}
	return false
}
