package handlers

import (
	"strings"

	"uni-advisor/internal/dto"
	"uni-advisor/internal/models"
	"uni-advisor/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RecommendationHandler struct {
	recService     *service.RecommendationService
	defaultVariant service.Variant
	logger         *zap.Logger
}

func NewRecommendationHandler(
	recService *service.RecommendationService,
	defaultVariant service.Variant,
	logger *zap.Logger,
) *RecommendationHandler {
	return &RecommendationHandler{
		recService:     recService,
		defaultVariant: defaultVariant,
		logger:         logger,
	}
}

// GetSchema godoc
// @Summary Profile schema
// @Description Ordered list of profile fields the form must collect
// @Tags recommendations
// @Produce json
// @Success 200 {array} models.Field
// @Router /api/v1/schema [get]
func (h *RecommendationHandler) GetSchema(c *fiber.Ctx) error {
	return c.JSON(models.Schema)
}

// CreateRecommendations godoc
// @Summary Generate university recommendations
// @Description Compiles the student profile into a prompt, runs one chat completion and returns the raw text with token usage and estimated cost
// @Tags recommendations
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body dto.RecommendationRequest true "Student profile"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/recommendations [post]
func (h *RecommendationHandler) CreateRecommendations(c *fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	variant := h.defaultVariant
	if strings.TrimSpace(req.Variant) != "" {
		v, err := service.ParseVariant(req.Variant)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		variant = v
	}

	rec, err := h.recService.Generate(c.UserContext(), variant, req.ToProfile())
	if err != nil {
		h.logger.Error("Failed to generate recommendations", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	r := rec.Result
	return c.JSON(dto.RecommendationResponse{
		RequestID:       rec.RequestID.String(),
		Variant:         rec.Variant,
		Model:           r.Model,
		Recommendations: string(r.Text),
		Usage: dto.UsageResponse{
			PromptTokens:     r.PromptTokens,
			CompletionTokens: r.CompletionTokens,
			TotalTokens:      r.TotalTokens,
		},
		TokenSummary:   service.TokenSummary(r),
		EstimatedCost:  rec.Cost,
		CostDisplay:    service.FormatCost(rec.Cost),
		ExportFileName: service.ExportFileName(rec.Profile),
	})
}

// ExportRecommendations godoc
// @Summary Download recommendations
// @Description Returns the recommendation text as a plain-text attachment named after the student
// @Tags recommendations
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param request body dto.ExportRequest true "Text to export"
// @Success 200 {string} string
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/recommendations/export [post]
func (h *RecommendationHandler) ExportRecommendations(c *fiber.Ctx) error {
	var req dto.ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	profile := models.NewProfile()
	profile.Set(models.FieldName, req.Name)

	c.Attachment(service.ExportFileName(profile))
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(req.Recommendations)
}
