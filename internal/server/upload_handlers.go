package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateUpload handles POST /api/uploads. It returns a presigned PUT URL the
// client uploads to directly, plus the public URL to reference afterwards.
func (s *Server) CreateUpload(c *fiber.Ctx) error {
	if s.mediaStore == nil {
		return models.RespondWithError(c, fiber.StatusServiceUnavailable,
			models.NewInternalError(fiber.NewError(fiber.StatusServiceUnavailable, "media storage not configured")))
	}

	userID := currentUserID(c)

	var req struct {
		Kind        string `json:"kind"`
		FileName    string `json:"file_name"`
		ContentType string `json:"content_type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondServiceError(c, errInvalidBody())
	}
	if req.FileName == "" || req.ContentType == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("file_name and content_type are required"))
	}

	ticket, err := s.mediaStore.CreateUploadTicket(c.Context(), userID, req.Kind, req.FileName, req.ContentType)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(ticket)
}
