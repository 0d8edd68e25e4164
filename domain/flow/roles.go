package flow

const (
	RoleApplicant = "applicant"
	RoleFrontdesk = "frontdesk"
	RoleControl   = "control"
	RoleTechnical = "technical"
	RoleSocial    = "social"
	RoleDirector  = "director"
	RoleMinister  = "minister"

	RoleAdmin = "admin"
	RoleIT    = "it"
)

// OverrideRoles bypass the per-rule role check on every transition.
// Guards are still evaluated for them.
var OverrideRoles = []string{RoleAdmin, RoleIT}
