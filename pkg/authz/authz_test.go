package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelier-lab/atelier/dao/model"
)

func TestCanMutate(t *testing.T) {
	tests := []struct {
		name      string
		actor     Actor
		ownership Ownership
		want      bool
	}{
		{"admin mutates own", Actor{UserID: 1, Role: model.RoleAdmin}, Owned(1), true},
		{"admin mutates others", Actor{UserID: 1, Role: model.RoleAdmin}, Owned(2), true},
		{"admin mutates unowned", Actor{UserID: 1, Role: model.RoleAdmin}, Unowned(), true},
		{"user mutates own", Actor{UserID: 5, Role: model.RoleUser}, Owned(5), true},
		{"user mutates others", Actor{UserID: 5, Role: model.RoleUser}, Owned(6), false},
		{"user mutates unowned", Actor{UserID: 5, Role: model.RoleUser}, Unowned(), true},
		{"guest mutates own", Actor{UserID: 9, Role: model.RoleGuest}, Owned(9), false},
		{"guest mutates unowned", Actor{UserID: 9, Role: model.RoleGuest}, Unowned(), false},
		{"unknown role", Actor{UserID: 9, Role: model.Role(0)}, Unowned(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutate(tt.actor, tt.ownership))
		})
	}
}

func TestOwnershipOf(t *testing.T) {
	ownerID := uint(3)
	assert.Equal(t, Owned(3), OwnershipOf(&ownerID))
	assert.Equal(t, Unowned(), OwnershipOf(nil))
}

func TestCanUpload(t *testing.T) {
	assert.True(t, CanUpload(Actor{Role: model.RoleAdmin}))
	assert.True(t, CanUpload(Actor{Role: model.RoleUser}))
	assert.False(t, CanUpload(Actor{Role: model.RoleGuest}))
}
