package middleware

import (
	"codecourse/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Owned is implemented by resources that belong to a single user.
type Owned interface {
	OwnerID() uuid.UUID
}

// CanMutate reports whether the actor may modify the resource.
// Superusers may modify anything, owners may modify what they own,
// nobody else may modify anything.
func CanMutate(actor *models.User, resource any) bool {
	if actor == nil {
		return false
	}
	if actor.IsSuperuser {
		return true
	}
	if owned, ok := resource.(Owned); ok {
		return owned.OwnerID() == actor.ID
	}
	return false
}

// SuperuserRequired guards admin routes. It must run after JWTMiddleware.
func SuperuserRequired(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil || !user.IsSuperuser {
		return NewPermissionDeniedError("")
	}
	return c.Next()
}
