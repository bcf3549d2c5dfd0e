package core

import "testing"

func TestRolePriorities(t *testing.T) {
	if RolePriority(RoleSuperAdmin) <= RolePriority(RoleBranchAdmin) {
		t.Error("super admin must outrank branch admin")
	}
	if RolePriority(RoleBranchAdmin) <= RolePriority(RoleTeacher) {
		t.Error("branch admin must outrank teacher")
	}
	if RolePriority("nonsense") != 0 {
		t.Error("unknown role must have zero priority")
	}
}

func TestMaxRolePriority(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  int
	}{
		{name: "empty", roles: nil, want: 0},
		{name: "single", roles: []string{RoleStudent}, want: RolePriority(RoleStudent)},
		{name: "admin wins", roles: []string{RoleTeacher, RoleBranchAdmin}, want: RolePriority(RoleBranchAdmin)},
		{name: "unknown ignored", roles: []string{"nonsense", RoleGuardian}, want: RolePriority(RoleGuardian)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxRolePriority(tt.roles); got != tt.want {
				t.Errorf("MaxRolePriority(%v) = %d, want %d", tt.roles, got, tt.want)
			}
		})
	}
}
