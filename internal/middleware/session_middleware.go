package middleware

import (
	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/fadilmartias/careerboost/internal/session"
	"github.com/fadilmartias/careerboost/internal/util"
	"github.com/gofiber/fiber/v2"
)

// RequireSession rejects requests without a session cookie and exposes the
// user id to later handlers through session.UserID.
func RequireSession(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := store.Current(c)
		if !ok {
			return util.HandleError(c, model.ErrUnauthenticated)
		}
		session.WithUserID(c, userID)
		return c.Next()
	}
}
