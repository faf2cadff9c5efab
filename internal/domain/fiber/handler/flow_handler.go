package handler

import (
	"time"

	"github.com/fadilmartias/careerboost/internal/dto"
	"github.com/fadilmartias/careerboost/internal/flow"
	"github.com/fadilmartias/careerboost/internal/middleware"
	"github.com/fadilmartias/careerboost/internal/session"
	"github.com/fadilmartias/careerboost/internal/usecase"
	"github.com/fadilmartias/careerboost/internal/util"
	"github.com/gofiber/fiber/v2"
)

type FlowHandler struct {
	uc       *usecase.CareerUsecase
	sessions *session.Store
}

func NewFlowHandler(uc *usecase.CareerUsecase, sessions *session.Store) *FlowHandler {
	return &FlowHandler{uc: uc, sessions: sessions}
}

// RegisterRoutes limits model-backed routes per client; grading is local
// and only needs the session.
func (h *FlowHandler) RegisterRoutes(app *fiber.App) {
	flows := app.Group("/api/flows", middleware.RequireSession(h.sessions))
	limit := middleware.UserRateLimiter(10, time.Minute)

	flows.Post("/ats", limit, h.ATS)
	flows.Post("/resume-enhancement", limit, h.EnhanceResume)
	flows.Post("/mcq", limit, h.GenerateMCQ)
	flows.Post("/mcq/submit", h.SubmitMCQ)
	flows.Post("/mock-interview", limit, h.MockInterview)
	flows.Post("/tutoring", limit, h.Tutoring)
}

func (h *FlowHandler) ATS(c *fiber.Ctx) error {
	req, err := parseBody[dto.ATSRequest](c)
	if err != nil {
		return util.HandleError(c, err)
	}
	out, err := h.uc.ATSScore(c.UserContext(), session.UserID(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success ATS scoring",
		Data:    out,
	})
}

func (h *FlowHandler) EnhanceResume(c *fiber.Ctx) error {
	req, err := parseBody[flow.EnhanceInput](c)
	if err != nil {
		return util.HandleError(c, err)
	}
	out, err := h.uc.EnhanceResume(c.UserContext(), session.UserID(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success enhance resume",
		Data:    out,
	})
}

func (h *FlowHandler) GenerateMCQ(c *fiber.Ctx) error {
	req, err := parseBody[flow.MCQInput](c)
	if err != nil {
		return util.HandleError(c, err)
	}
	out, err := h.uc.GenerateMCQTest(c.UserContext(), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate MCQ test",
		Data:    out,
	})
}

func (h *FlowHandler) SubmitMCQ(c *fiber.Ctx) error {
	req, err := parseBody[dto.MCQSubmitRequest](c)
	if err != nil {
		return util.HandleError(c, err)
	}
	result, err := h.uc.GradeMCQ(c.UserContext(), session.UserID(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Test graded",
		Data:    result,
	})
}

func (h *FlowHandler) MockInterview(c *fiber.Ctx) error {
	req, err := parseBody[flow.InterviewInput](c)
	if err != nil {
		return util.HandleError(c, err)
	}
	out, err := h.uc.MockInterview(c.UserContext(), session.UserID(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success mock interview",
		Data:    out,
	})
}

func (h *FlowHandler) Tutoring(c *fiber.Ctx) error {
	req, err := parseBody[flow.TutoringInput](c)
	if err != nil {
		return util.HandleError(c, err)
	}
	out, err := h.uc.Tutor(c.UserContext(), session.UserID(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success tutoring",
		Data:    out,
	})
}
