package core

// Roles; each unlocks a role-specific dashboard in the portal.
const (
	RoleSuperAdmin  = "admin:super"
	RoleBranchAdmin = "admin:branch"
	RoleTeacher     = "teacher:"
	RoleStudent     = "student:"
	RoleGuardian    = "guardian:"
)

var (
	AdminRoles = []string{RoleSuperAdmin, RoleBranchAdmin}
	AllRoles   = []string{RoleSuperAdmin, RoleBranchAdmin, RoleTeacher, RoleStudent, RoleGuardian}

	rolePriorities = map[string]int{
		// Admins: 30 - 21
		RoleSuperAdmin:  30,
		RoleBranchAdmin: 21,

		// Teachers: 20 - 11
		RoleTeacher: 11,

		// Students & guardians: 10 - 1
		RoleGuardian: 2,
		RoleStudent:  1,
	}

	Roles = []Role{
		{Name: "Student", Value: RoleStudent},
		{Name: "Guardian", Value: RoleGuardian},
		{Name: "Teacher", Value: RoleTeacher},
		{Name: "Branch Admin", Value: RoleBranchAdmin},
		{Name: "Super Admin", Value: RoleSuperAdmin},
	}
)

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func RolePriority(role string) int {
	return rolePriorities[role]
}

func MaxRolePriority(roles []string) int {
	var max int
	for _, role := range roles {
		if RolePriority(role) > max {
			max = RolePriority(role)
		}
	}
	return max
}
