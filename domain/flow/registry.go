package flow

import (
	"caseflow/bizerror"
	"caseflow/domain"
	"caseflow/domain/state"
	"caseflow/session"
)

// Facts supplies the externally owned completion predicates the guards
// consult. Implementations talk to the document and task stores; an error
// means the backing store is unavailable, never that the fact is false.
type Facts interface {
	DocumentsVerified(c *domain.ApplicationCase) (bool, error)
	ControlOutcomeRecorded(c *domain.ApplicationCase) (bool, error)
}

type GuardContext struct {
	Case  *domain.ApplicationCase
	Actor session.Identity
	Facts Facts
}

// Guard is a declarative transition predicate. Requirement is the reason
// surfaced to callers while the guard is unmet.
type Guard struct {
	Requirement string
	Check       func(gc GuardContext) (bool, error)
}

type TransitionRule struct {
	From  state.State
	To    state.State
	Label string

	AllowedRoles []string
	Guards       []Guard
}

// Registry holds the closed workflow definition. It is built once at
// startup and read-only afterwards.
type Registry struct {
	rules  []TransitionRule
	byFrom map[state.State][]TransitionRule
}

func NewRegistry(rules []TransitionRule) (*Registry, error) {
	byFrom := map[state.State][]TransitionRule{}
	for _, rule := range rules {
		if _, err := state.Parse(rule.From.String()); err != nil {
			return nil, &bizerror.ErrConfiguration{Detail: "rule '" + rule.Label + "' references undefined state " + rule.From.String()}
		}
		if _, err := state.Parse(rule.To.String()); err != nil {
			return nil, &bizerror.ErrConfiguration{Detail: "rule '" + rule.Label + "' references undefined state " + rule.To.String()}
		}
		if rule.From.Terminal() {
			return nil, &bizerror.ErrConfiguration{Detail: "terminal state " + rule.From.String() + " must not have outbound rule '" + rule.Label + "'"}
		}
		byFrom[rule.From] = append(byFrom[rule.From], rule)
	}
	return &Registry{rules: rules, byFrom: byFrom}, nil
}

// RulesFrom returns the outbound rules of a state in declared order.
func (r *Registry) RulesFrom(s state.State) []TransitionRule {
	return r.byFrom[s]
}

func (r *Registry) Rule(from, to state.State) (TransitionRule, bool) {
	for _, rule := range r.byFrom[from] {
		if rule.To == to {
			return rule, true
		}
	}
	return TransitionRule{}, false
}

func (r *Registry) Rules() []TransitionRule {
	return r.rules
}
