package services

import "bloglist/internal/models"

// Action is a mutating operation gated by the ownership policy.
type Action int

const (
	ActionCreate Action = iota
	ActionUpdate
	ActionDelete
	ActionLike
)

// String returns the action name used in logs and error messages.
func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	case ActionLike:
		return "like"
	default:
		return "unknown"
	}
}

// CanMutate decides whether the identity may perform the action on the
// blog. It is pure: no lookups, no side effects.
//
// Update and delete follow the owner-only rule; like follows the
// no-self-like rule. The two rules compare the same ids but in
// opposite directions, so they are kept as separate branches.
func CanMutate(action Action, blog *models.Blog, userID string) bool {
	switch action {
	case ActionCreate:
		// Any authenticated identity may create; ownership is
		// assigned at creation, not checked.
		return true
	case ActionUpdate, ActionDelete:
		return ownerOnly(blog, userID)
	case ActionLike:
		return noSelfLike(blog, userID)
	default:
		return false
	}
}

// ownerOnly permits a mutation only to the blog's recorded owner.
func ownerOnly(blog *models.Blog, userID string) bool {
	return blog.UserID == userID
}

// noSelfLike rejects likes from the blog's own author; anyone else may
// like it.
func noSelfLike(blog *models.Blog, userID string) bool {
	return blog.UserID != userID
}
