package server

import (
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetActivity handles GET /api/activity. Returns the merged feed of likes,
// comments and follows aimed at the signed-in user, newest first.
func (s *Server) GetActivity(c *fiber.Ctx) error {
	userID := currentUserID(c)
	limit := c.QueryInt("limit", service.MaxActivityItems)

	items, err := s.activityService.GetActivity(c.Context(), userID, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(items)
}
