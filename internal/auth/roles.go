// Package auth supplies the identity, role, and session model consumed by
// the dashboard core. Credentials are a fixed demo directory; this is not a
// hardened authentication system.
package auth

// Role is the closed set of dashboard roles.
type Role string

// Dashboard roles.
const (
	RoleAdmin     Role = "admin"
	RoleOrganizer Role = "race_organizer"
	RoleOwner     Role = "horse_owner"
	RoleJudge     Role = "judge"
	RoleViewer    Role = "public_viewer"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOrganizer, RoleOwner, RoleJudge, RoleViewer:
		return true
	}
	return false
}

// Action is a capability gated by role.
type Action string

// Gated actions.
const (
	ActionCreateHorse   Action = "horse:create"
	ActionCreateRace    Action = "race:create"
	ActionRegisterHorse Action = "registration:create"
	ActionSubmitResults Action = "results:submit"
	ActionViewStats     Action = "stats:view"
)

// capabilities maps each action to the roles allowed to perform it. Admin
// is implicitly allowed everything.
var capabilities = map[Action][]Role{
	ActionCreateHorse:   {RoleOwner},
	ActionCreateRace:    {RoleOrganizer},
	ActionRegisterHorse: {RoleOwner},
	ActionSubmitResults: {RoleJudge},
	ActionViewStats:     {RoleOrganizer, RoleOwner, RoleJudge, RoleViewer},
}

// Can reports whether the role may perform the action.
func Can(role Role, action Action) bool {
	if role == RoleAdmin {
		return true
	}
	for _, allowed := range capabilities[action] {
		if role == allowed {
			return true
		}
	}
	return false
}
