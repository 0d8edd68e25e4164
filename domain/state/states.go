package state

import (
	"errors"
)

// ErrUnknownState rejects a state name outside the closed enumeration.
var ErrUnknownState = errors.New("unknown state")

// State is the closed enumeration of case workflow states. The graph is not
// strictly linear: REJECTED and ON_HOLD are reachable from multiple points.
type State string

const (
	Draft                 State = "DRAFT"
	IntakeReview          State = "INTAKE_REVIEW"
	ControlAssign         State = "CONTROL_ASSIGN"
	ControlVisitScheduled State = "CONTROL_VISIT_SCHEDULED"
	ControlInProgress     State = "CONTROL_IN_PROGRESS"
	TechnicalReview       State = "TECHNICAL_REVIEW"
	SocialReview          State = "SOCIAL_REVIEW"
	DirectorReview        State = "DIRECTOR_REVIEW"
	MinisterDecision      State = "MINISTER_DECISION"
	Closure               State = "CLOSURE"
	Rejected              State = "REJECTED"
	OnHold                State = "ON_HOLD"
)

var All = []State{
	Draft, IntakeReview, ControlAssign, ControlVisitScheduled, ControlInProgress,
	TechnicalReview, SocialReview, DirectorReview, MinisterDecision,
	Closure, Rejected, OnHold,
}

func Parse(raw string) (State, error) {
	s := State(raw)
	for _, v := range All {
		if v == s {
			return s, nil
		}
	}
	return "", ErrUnknownState
}

func (s State) String() string {
	return string(s)
}

// Terminal states have no outbound transitions.
func (s State) Terminal() bool {
	return s == Closure || s == Rejected
}
