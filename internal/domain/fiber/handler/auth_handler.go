package handler

import (
	"github.com/fadilmartias/careerboost/internal/dto"
	"github.com/fadilmartias/careerboost/internal/session"
	"github.com/fadilmartias/careerboost/internal/usecase"
	"github.com/fadilmartias/careerboost/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	uc       *usecase.AuthUsecase
	sessions *session.Store
}

func NewAuthHandler(uc *usecase.AuthUsecase, sessions *session.Store) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
	auth.Post("/logout", h.Logout)
	auth.Get("/session", h.Session)
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	req, err := parseBody[dto.SignupRequest](c)
	if err != nil {
		return util.HandleError(c, err)
	}
	if err := req.Validate(); err != nil {
		return util.HandleError(c, err)
	}

	user, err := h.uc.Signup(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return util.HandleError(c, err)
	}
	h.sessions.Create(c, user.ID.String())

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Account created",
		Data:    dto.NewUserResponse(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	req, err := parseBody[dto.LoginRequest](c)
	if err != nil {
		return util.HandleError(c, err)
	}
	if err := req.Validate(); err != nil {
		return util.HandleError(c, err)
	}

	user, err := h.uc.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return util.HandleError(c, err)
	}
	h.sessions.Create(c, user.ID.String())

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Logged in",
		Data:    dto.NewUserResponse(user),
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Destroy(c)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Logged out",
	})
}

// Session never fails: a missing session is reported as unauthenticated.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	userID, ok := h.sessions.Current(c)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Session status",
		Data:    dto.SessionResponse{IsAuthenticated: ok, UserID: userID},
	})
}
