package flow

import (
	"caseflow/domain/state"
)

const (
	RequirementDocumentsVerified      = "required documents not verified"
	RequirementControlOutcomeRecorded = "control visit outcome not recorded"
	RequirementUnassignedOrSelf       = "case is assigned to another actor"
	RequirementAssigneeOnly           = "actor is not the assignee of the case"
)

func DocumentsVerifiedGuard() Guard {
	return Guard{
		Requirement: RequirementDocumentsVerified,
		Check: func(gc GuardContext) (bool, error) {
			return gc.Facts.DocumentsVerified(gc.Case)
		},
	}
}

func ControlOutcomeRecordedGuard() Guard {
	return Guard{
		Requirement: RequirementControlOutcomeRecorded,
		Check: func(gc GuardContext) (bool, error) {
			return gc.Facts.ControlOutcomeRecorded(gc.Case)
		},
	}
}

// UnassignedOrSelfGuard implements "assign to self": the case must not be
// owned by someone else when the actor takes it.
func UnassignedOrSelfGuard() Guard {
	return Guard{
		Requirement: RequirementUnassignedOrSelf,
		Check: func(gc GuardContext) (bool, error) {
			return gc.Case.AssignedTo == 0 || gc.Case.AssignedTo == gc.Actor.ID, nil
		},
	}
}

func AssigneeOnlyGuard() Guard {
	return Guard{
		Requirement: RequirementAssigneeOnly,
		Check: func(gc GuardContext) (bool, error) {
			return gc.Case.AssignedTo == gc.Actor.ID, nil
		},
	}
}

// HousingWorkflowRules is the transition table of the housing-subsidy case
// workflow. Declared order is the display order of outbound transitions.
func HousingWorkflowRules() []TransitionRule {
	return []TransitionRule{
		{From: state.Draft, To: state.IntakeReview, Label: "submit",
			AllowedRoles: []string{RoleApplicant, RoleFrontdesk}},

		{From: state.IntakeReview, To: state.ControlAssign, Label: "accept intake",
			AllowedRoles: []string{RoleFrontdesk}, Guards: []Guard{DocumentsVerifiedGuard()}},
		{From: state.IntakeReview, To: state.OnHold, Label: "put on hold",
			AllowedRoles: []string{RoleFrontdesk}},
		{From: state.IntakeReview, To: state.Rejected, Label: "reject at intake",
			AllowedRoles: []string{RoleFrontdesk}},

		{From: state.ControlAssign, To: state.ControlVisitScheduled, Label: "schedule control visit",
			AllowedRoles: []string{RoleControl}, Guards: []Guard{UnassignedOrSelfGuard()}},
		{From: state.ControlAssign, To: state.TechnicalReview, Label: "skip visit",
			AllowedRoles: []string{RoleControl}, Guards: []Guard{ControlOutcomeRecordedGuard()}},

		{From: state.ControlVisitScheduled, To: state.ControlInProgress, Label: "start control visit",
			AllowedRoles: []string{RoleControl}, Guards: []Guard{AssigneeOnlyGuard()}},

		{From: state.ControlInProgress, To: state.TechnicalReview, Label: "finish control",
			AllowedRoles: []string{RoleControl}, Guards: []Guard{ControlOutcomeRecordedGuard()}},
		{From: state.ControlInProgress, To: state.OnHold, Label: "put on hold",
			AllowedRoles: []string{RoleControl}},

		{From: state.TechnicalReview, To: state.SocialReview, Label: "approve technically",
			AllowedRoles: []string{RoleTechnical}},
		{From: state.TechnicalReview, To: state.Rejected, Label: "reject technically",
			AllowedRoles: []string{RoleTechnical}},

		{From: state.SocialReview, To: state.DirectorReview, Label: "approve socially",
			AllowedRoles: []string{RoleSocial}},
		{From: state.SocialReview, To: state.Rejected, Label: "reject socially",
			AllowedRoles: []string{RoleSocial}},

		{From: state.DirectorReview, To: state.MinisterDecision, Label: "recommend to minister",
			AllowedRoles: []string{RoleDirector}},
		{From: state.DirectorReview, To: state.Rejected, Label: "reject by director",
			AllowedRoles: []string{RoleDirector}},

		{From: state.MinisterDecision, To: state.Closure, Label: "approve and close",
			AllowedRoles: []string{RoleMinister}},
		{From: state.MinisterDecision, To: state.Rejected, Label: "reject by minister",
			AllowedRoles: []string{RoleMinister}},

		{From: state.OnHold, To: state.IntakeReview, Label: "resume",
			AllowedRoles: []string{RoleFrontdesk}},
	}
}

func NewHousingRegistry() (*Registry, error) {
	return NewRegistry(HousingWorkflowRules())
}
