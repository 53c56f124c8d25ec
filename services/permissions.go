package services

import "pifah-api/models"

// Operation names every role-gated action in the system.
type Operation string

const (
	OpSubmitProject        Operation = "submit-project"
	OpViewOwnProjects      Operation = "view-own-projects"
	OpViewAllProjects      Operation = "view-all-projects"
	OpReviewProject        Operation = "review-project"
	OpApproveRejectProject Operation = "approve-reject-project"
	OpManageCountries      Operation = "manage-countries"
	OpManageSettings       Operation = "manage-settings"
	OpManageUsers          Operation = "manage-users"
)

// rolePermissions maps each role to its allowed operations. Every
// authenticated role may submit projects and view its own; admin may do
// everything.
var rolePermissions = map[string][]Operation{
	models.RolePublic: {
		OpSubmitProject,
		OpViewOwnProjects,
	},
	models.RoleFocalPerson: {
		OpSubmitProject,
		OpViewOwnProjects,
		OpViewAllProjects,
		OpReviewProject,
	},
	models.RoleApprover: {
		OpSubmitProject,
		OpViewOwnProjects,
		OpViewAllProjects,
		OpApproveRejectProject,
	},
	models.RoleAdmin: {
		OpSubmitProject,
		OpViewOwnProjects,
		OpViewAllProjects,
		OpReviewProject,
		OpApproveRejectProject,
		OpManageCountries,
		OpManageSettings,
		OpManageUsers,
	},
}

// RoleCan is the access-control gate: a pure role x operation predicate.
// Unknown roles are denied everything.
func RoleCan(role string, op Operation) bool {
	for _, allowed := range rolePermissions[role] {
		if allowed == op {
			return true
		}
	}
	return false
}

// PrivilegedRole reports whether the role sees projects in every status
// (the privileged statistics and unscoped project listings).
func PrivilegedRole(role string) bool {
	return RoleCan(role, OpViewAllProjects)
}
