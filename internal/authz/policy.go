package authz

import "gymcrm/internal/model"

// roleDefaults maps each built-in role to its default permission set.
// SUPER_ADMIN and ADMIN are handled in Allow and never consult this table.
var roleDefaults = map[model.UserRole][]model.Permission{
	model.RoleTrainer: {
		model.PermViewDashboard,
		model.PermViewMembers,
		model.PermViewAttendance,
		model.PermViewWorkouts,
		model.PermCreateWorkouts,
		model.PermEditWorkouts,
		model.PermDeleteWorkouts,
		model.PermViewDiets,
		model.PermCreateDiets,
		model.PermEditDiets,
		model.PermDeleteDiets,
	},
	model.RoleReceptionist: {
		model.PermViewDashboard,
		model.PermViewMembers,
		model.PermCreateMembers,
		model.PermEditMembers,
		model.PermViewAttendance,
		model.PermViewLeads,
		model.PermCreateLeads,
		model.PermEditLeads,
		model.PermViewBilling,
		model.PermCreatePayments,
		model.PermViewInvoices,
		model.PermCreateInvoices,
	},
	model.RoleHelper: {
		model.PermViewDashboard,
		model.PermViewAttendance,
	},
}

// DefaultPermissions returns the default permission set for a built-in role.
// CUSTOM has no defaults; its permissions live on the user record.
func DefaultPermissions(role model.UserRole) []model.Permission {
	perms := roleDefaults[role]
	out := make([]model.Permission, len(perms))
	copy(out, perms)
	return out
}

// EffectivePermissions resolves the permission set carried in a user's
// session: role defaults, or the explicit set when the role is CUSTOM.
func EffectivePermissions(user *model.User) []model.Permission {
	if user.Role == model.RoleCustom {
		out := make([]model.Permission, len(user.Permissions))
		copy(out, user.Permissions)
		return out
	}
	return DefaultPermissions(user.Role)
}

// Allow is the single policy-evaluation point: it decides whether a caller
// with the given role and permission set may perform an action. It is a pure
// function so authorization is testable without any request machinery.
func Allow(role model.UserRole, permissions []model.Permission, action model.Permission) bool {
	switch role {
	case model.RoleSuperAdmin, model.RoleAdmin:
		return true
	case model.RoleCustom:
		return contains(permissions, action)
	default:
		return contains(roleDefaults[role], action)
	}
}

func contains(perms []model.Permission, p model.Permission) bool {
	for _, have := range perms {
		if have == p {
			return true
		}
	}
	return false
}
