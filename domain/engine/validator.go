package engine

import (
	"fmt"

	"caseflow/bizerror"
	"caseflow/domain"
	"caseflow/domain/flow"
	"caseflow/domain/state"
	"caseflow/session"

	"github.com/fundwit/go-commons/types"
)

const (
	ReasonNoSuchTransition = "no such transition defined"
	ReasonInsufficientRole = "insufficient role"
)

type ValidationResult struct {
	Valid   bool     `json:"valid"`
	Reasons []string `json:"reasons"`
}

type AvailableTransition struct {
	ToState state.State `json:"toState"`
	Label   string      `json:"label"`

	// Requirements lists the currently unmet guard descriptions, so a
	// caller can show "needs: X, Y" before the transition is satisfiable.
	Requirements []string `json:"requirements"`
}

// Validate produces a verdict for one target state against the case as
// given. It has no side effects, and collects every failed check instead
// of short-circuiting. An error is raised only when a guard fact store
// cannot be reached.
func (e *Engine) Validate(c *domain.ApplicationCase, target state.State, s *session.Context) (*ValidationResult, error) {
	rule, found := e.registry.Rule(c.CurrentState, target)
	if !found {
		return &ValidationResult{Valid: false, Reasons: []string{ReasonNoSuchTransition}}, nil
	}

	reasons := []string{}
	if !s.Perms.HasAnyRole(rule.AllowedRoles) && !s.Perms.HasAnyRole(flow.OverrideRoles) {
		reasons = append(reasons, ReasonInsufficientRole)
	}

	unmet, err := e.unmetRequirements(rule, c, s)
	if err != nil {
		return nil, err
	}
	reasons = append(reasons, unmet...)

	return &ValidationResult{Valid: len(reasons) == 0, Reasons: reasons}, nil
}

// AvailableTransitions returns every target reachable from the case's
// current state for which the role check alone passes, each paired with
// its unmet guard requirements.
func (e *Engine) AvailableTransitions(c *domain.ApplicationCase, s *session.Context) ([]AvailableTransition, error) {
	transitions := []AvailableTransition{}
	for _, rule := range e.registry.RulesFrom(c.CurrentState) {
		if !s.Perms.HasAnyRole(rule.AllowedRoles) && !s.Perms.HasAnyRole(flow.OverrideRoles) {
			continue
		}
		unmet, err := e.unmetRequirements(rule, c, s)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, AvailableTransition{ToState: rule.To, Label: rule.Label, Requirements: unmet})
	}
	return transitions, nil
}

func (e *Engine) ValidateTransition(q *domain.TransitionValidationQuery, s *session.Context) (*ValidationResult, error) {
	if s == nil || s.Identity.ID == 0 {
		return nil, bizerror.ErrUnauthenticated
	}
	target, err := state.Parse(q.ToState)
	if err != nil {
		return nil, err
	}

	c, err := LoadCaseFunc(e.dataSource.GormDB(sessionCtx(s)), q.CaseID)
	if err != nil {
		return nil, err
	}
	return e.Validate(c, target, s)
}

func (e *Engine) CaseTransitions(caseId types.ID, s *session.Context) ([]AvailableTransition, error) {
	if s == nil || s.Identity.ID == 0 {
		return nil, bizerror.ErrUnauthenticated
	}
	c, err := LoadCaseFunc(e.dataSource.GormDB(sessionCtx(s)), caseId)
	if err != nil {
		return nil, err
	}
	return e.AvailableTransitions(c, s)
}

func (e *Engine) unmetRequirements(rule flow.TransitionRule, c *domain.ApplicationCase, s *session.Context) ([]string, error) {
	unmet := []string{}
	for _, guard := range rule.Guards {
		met, err := guard.Check(flow.GuardContext{Case: c, Actor: s.Identity, Facts: e.facts})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", bizerror.ErrStoreUnavailable, err)
		}
		if !met {
			unmet = append(unmet, guard.Requirement)
		}
	}
	return unmet, nil
}
