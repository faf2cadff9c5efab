package handler

import (
	"github.com/fadilmartias/careerboost/internal/dto"
	"github.com/fadilmartias/careerboost/internal/middleware"
	"github.com/fadilmartias/careerboost/internal/session"
	"github.com/fadilmartias/careerboost/internal/usecase"
	"github.com/fadilmartias/careerboost/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	uc       *usecase.ProfileUsecase
	sessions *session.Store
}

func NewProfileHandler(uc *usecase.ProfileUsecase, sessions *session.Store) *ProfileHandler {
	return &ProfileHandler{uc: uc, sessions: sessions}
}

func (h *ProfileHandler) RegisterRoutes(app *fiber.App) {
	requireSession := middleware.RequireSession(h.sessions)

	profile := app.Group("/api/profile", requireSession)
	profile.Get("/", h.Get)
	profile.Put("/", h.Update)
	profile.Post("/resume", h.UploadResume)
	profile.Post("/picture", h.UploadPicture)

	scores := app.Group("/api/scores", requireSession)
	scores.Get("/", h.GetScores)
	scores.Post("/", h.UpdateScores)
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	user, err := h.uc.Get(c.UserContext(), session.UserID(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get profile",
		Data:    dto.NewUserResponse(user),
	})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	req, err := parseBody[dto.UpdateProfileRequest](c)
	if err != nil {
		return util.HandleError(c, err)
	}
	if err := req.Validate(); err != nil {
		return util.HandleError(c, err)
	}

	user, err := h.uc.Update(c.UserContext(), session.UserID(c), req.Profile())
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Profile updated",
		Data:    dto.NewUserResponse(user),
	})
}

func (h *ProfileHandler) UploadResume(c *fiber.Ctx) error {
	filename, data, err := readUpload(c, "resume", usecase.MaxResumeSize)
	if err != nil {
		return util.HandleError(c, err)
	}

	user, err := h.uc.UploadResume(c.UserContext(), session.UserID(c), filename, data)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Resume uploaded",
		Data:    dto.NewUserResponse(user),
	})
}

func (h *ProfileHandler) UploadPicture(c *fiber.Ctx) error {
	_, data, err := readUpload(c, "picture", usecase.MaxPictureSize)
	if err != nil {
		return util.HandleError(c, err)
	}

	user, err := h.uc.UploadPicture(c.UserContext(), session.UserID(c), data)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Profile picture uploaded",
		Data:    dto.NewUserResponse(user),
	})
}

func (h *ProfileHandler) GetScores(c *fiber.Ctx) error {
	scores, err := h.uc.GetScores(c.UserContext(), session.UserID(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get scores",
		Data:    dto.ScoresResponse{Scores: scores},
	})
}

func (h *ProfileHandler) UpdateScores(c *fiber.Ctx) error {
	req, err := parseBody[dto.UpdateScoresRequest](c)
	if err != nil {
		return util.HandleError(c, err)
	}

	scores, err := h.uc.UpdateScores(c.UserContext(), session.UserID(c), req.Scores)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Scores updated",
		Data:    dto.ScoresResponse{Scores: scores},
	})
}
