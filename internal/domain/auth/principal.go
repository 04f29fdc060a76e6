package auth

type Role string

const (
	RoleOwner    Role = "owner"    // full access
	RoleManager  Role = "manager"  // may read any employee or department timesheet
	RoleEmployee Role = "employee" // may read only their own timesheet
)

// Principal is the caller identified by an access token.
type Principal struct {
	EmployeeID string
	Role       Role
}

// IsManager checks if the caller is manager or owner
func (p Principal) IsManager() bool {
	return p.Role == RoleManager || p.Role == RoleOwner
}

// CanAccessEmployee reports whether the caller may read employeeID's timesheets.
func (p Principal) CanAccessEmployee(employeeID string) bool {
	return p.IsManager() || (p.EmployeeID != "" && p.EmployeeID == employeeID)
}

// PrincipalFromClaims reads the employee_id and role claims of an access token.
func PrincipalFromClaims(claims map[string]interface{}) (Principal, error) {
	if tokenType, _ := claims["type"].(string); tokenType != "access" {
		return Principal{}, ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	employeeID, _ := claims["employee_id"].(string)
	if employeeID == "" && role != string(RoleOwner) {
		return Principal{}, ErrEmployeeClaimMissing
	}

	return Principal{EmployeeID: employeeID, Role: Role(role)}, nil
}
