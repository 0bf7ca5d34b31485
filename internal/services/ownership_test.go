package services_test

import (
	"testing"

	"bloglist/internal/models"
	"bloglist/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate_OwnerOnlyRule(t *testing.T) {
	blog := &models.Blog{ID: "blog-1", Title: "Hi", UserID: "alice-id"}

	tests := []struct {
		name   string
		action services.Action
		userID string
		want   bool
	}{
		{"owner may update", services.ActionUpdate, "alice-id", true},
		{"non-owner may not update", services.ActionUpdate, "bob-id", false},
		{"owner may delete", services.ActionDelete, "alice-id", true},
		{"non-owner may not delete", services.ActionDelete, "bob-id", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.CanMutate(tt.action, blog, tt.userID))
		})
	}
}

func TestCanMutate_NoSelfLikeRule(t *testing.T) {
	blog := &models.Blog{ID: "blog-1", Title: "Hi", UserID: "alice-id"}

	tests := []struct {
		name   string
		userID string
		want   bool
	}{
		{"author may not like own blog", "alice-id", false},
		{"anyone else may like", "bob-id", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.CanMutate(services.ActionLike, blog, tt.userID))
		})
	}
}

func TestCanMutate_CreateAlwaysPermitted(t *testing.T) {
	blog := &models.Blog{UserID: "alice-id"}
	assert.True(t, services.CanMutate(services.ActionCreate, blog, "alice-id"))
	assert.True(t, services.CanMutate(services.ActionCreate, blog, "bob-id"))
}

func TestCanMutate_UnknownActionDenied(t *testing.T) {
	blog := &models.Blog{UserID: "alice-id"}
	assert.False(t, services.CanMutate(services.Action(99), blog, "alice-id"))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "create", services.ActionCreate.String())
	assert.Equal(t, "update", services.ActionUpdate.String())
	assert.Equal(t, "delete", services.ActionDelete.String())
	assert.Equal(t, "like", services.ActionLike.String())
	assert.Equal(t, "unknown", services.Action(99).String())
}
