package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipalFromClaims(t *testing.T) {
	tests := []struct {
		name    string
		claims  map[string]interface{}
		want    Principal
		wantErr error
	}{
		{
			name:   "employee",
			claims: map[string]interface{}{"type": "access", "role": "employee", "employee_id": "emp-1"},
			want:   Principal{EmployeeID: "emp-1", Role: RoleEmployee},
		},
		{
			name:   "owner without employee record",
			claims: map[string]interface{}{"type": "access", "role": "owner"},
			want:   Principal{Role: RoleOwner},
		},
		{
			name:    "refresh token",
			claims:  map[string]interface{}{"type": "refresh", "role": "employee", "employee_id": "emp-1"},
			wantErr: ErrInvalidToken,
		},
		{
			name:    "missing employee",
			claims:  map[string]interface{}{"type": "access", "role": "manager"},
			wantErr: ErrEmployeeClaimMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrincipalFromClaims(tt.claims)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrincipal_CanAccessEmployee(t *testing.T) {
	employee := Principal{EmployeeID: "emp-1", Role: RoleEmployee}
	manager := Principal{EmployeeID: "emp-9", Role: RoleManager}

	assert.True(t, employee.CanAccessEmployee("emp-1"))
	assert.False(t, employee.CanAccessEmployee("emp-2"))
	assert.True(t, manager.CanAccessEmployee("emp-2"))
	assert.False(t, Principal{Role: RoleEmployee}.CanAccessEmployee(""))
}
