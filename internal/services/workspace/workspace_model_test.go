package workspace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/curaious/tasker/internal/services/membership"
)

func TestCreateWorkspaceRequestValidate(t *testing.T) {
	longDesc := strings.Repeat("x", 501)

	assert.NoError(t, (&CreateWorkspaceRequest{Name: "Engineering"}).Validate())
	assert.Error(t, (&CreateWorkspaceRequest{}).Validate())
	assert.Error(t, (&CreateWorkspaceRequest{Name: strings.Repeat("x", 101)}).Validate())
	assert.Error(t, (&CreateWorkspaceRequest{Name: "Engineering", Description: &longDesc}).Validate())
}

func TestUpdateWorkspaceRequestValidate(t *testing.T) {
	empty := ""
	name := "Renamed"

	assert.NoError(t, (&UpdateWorkspaceRequest{}).Validate())
	assert.NoError(t, (&UpdateWorkspaceRequest{Name: &name}).Validate())
	assert.Error(t, (&UpdateWorkspaceRequest{Name: &empty}).Validate())
}

func TestInviteRequestValidate(t *testing.T) {
	tests := []struct {
		name string
		req  InviteRequest
		ok   bool
	}{
		{"default role", InviteRequest{Email: "jo@example.com"}, true},
		{"member role", InviteRequest{Email: "jo@example.com", Role: membership.RoleMember}, true},
		{"admin role", InviteRequest{Email: "jo@example.com", Role: membership.RoleAdmin}, true},
		{"owner role rejected", InviteRequest{Email: "jo@example.com", Role: membership.RoleOwner}, false},
		{"unknown role rejected", InviteRequest{Email: "jo@example.com", Role: "SUPERUSER"}, false},
		{"missing email", InviteRequest{Role: membership.RoleMember}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
