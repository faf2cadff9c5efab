// Package session binds a browser to a user id through a single cookie.
//
// The cookie value is the user id. On the wire it is encrypted by the
// encryptcookie middleware, so a tampered value decrypts to empty and reads
// as no session.
package session

import (
	"strings"
	"time"

	"github.com/fadilmartias/careerboost/internal/config"
	"github.com/gofiber/fiber/v2"
)

const localsUserID = "session_user_id"

type Store struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

func NewStore(cfg *config.SessionConfig, secure bool) *Store {
	return &Store{
		Name:   cfg.CookieName,
		MaxAge: cfg.MaxAge,
		Secure: secure,
	}
}

// Create writes the session cookie for userID.
func (s *Store) Create(c *fiber.Ctx, userID string) {
	c.Cookie(s.cookie(userID, time.Now().Add(s.MaxAge), int(s.MaxAge.Seconds())))
}

// Current returns the user id carried by the request. A missing or
// undecryptable cookie is reported as absent, never as an error.
func (s *Store) Current(c *fiber.Ctx) (string, bool) {
	userID := strings.TrimSpace(c.Cookies(s.Name))
	if userID == "" {
		return "", false
	}
	return userID, true
}

// Destroy expires the session cookie.
func (s *Store) Destroy(c *fiber.Ctx) {
	c.Cookie(s.cookie("", time.Now().Add(-24*time.Hour), 0))
}

func (s *Store) cookie(value string, expires time.Time, maxAge int) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     s.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// WithUserID stores the resolved user id on the request.
func WithUserID(c *fiber.Ctx, userID string) {
	c.Locals(localsUserID, userID)
}

// UserID returns the id stored by WithUserID, or "" when none was stored.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsUserID).(string)
	return id
}
