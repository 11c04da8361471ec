package server

import (
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed?mode=following|trending&limit=&offset=.
// Works anonymously for trending; following requires a bearer token.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID, _ := s.optionalUserID(c)
	p := parsePagination(c, service.MaxFeedPageSize)

	posts, err := s.feedService.GetFeed(c.Context(), service.FeedInput{
		Mode:          c.Query("mode"),
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: userID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}
