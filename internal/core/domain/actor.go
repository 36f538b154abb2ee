package domain

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleLeader  Role = "leader"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
	RoleViewer  Role = "viewer"
	RoleArtist  Role = "artist"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLeader, RoleManager, RoleMember, RoleViewer, RoleArtist:
		return true
	}
	return false
}

// Actor is the authenticated user on whose behalf an operation runs.
// Identity is resolved upstream; this service only consumes it.
type Actor struct {
	ID           string
	Role         Role
	BusinessUnit *BusinessUnit
}

func (a Actor) inBusinessUnit(bu BusinessUnit) bool {
	return a.BusinessUnit != nil && *a.BusinessUnit == bu
}

// CanManageTemplate reports whether the actor may create, edit or delete templates of bu.
func (a Actor) CanManageTemplate(bu BusinessUnit) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleLeader, RoleManager:
		return a.inBusinessUnit(bu)
	}
	return false
}

// CanCreateTasksIn reports whether the actor may add tasks to the given project.
func (a Actor) CanCreateTasksIn(project Project) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleLeader:
		return a.inBusinessUnit(project.BusinessUnit)
	case RoleManager, RoleMember:
		return project.IsPM(a.ID) || project.HasParticipant(a.ID)
	}
	return false
}
