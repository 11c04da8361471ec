package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCategories handles GET /api/categories
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categoryRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(categories)
}

// GetCategory handles GET /api/categories/:slug
func (s *Server) GetCategory(c *fiber.Ctx) error {
	slug := c.Params("slug")
	category, err := s.categoryRepo.GetBySlug(c.Context(), slug)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Category", slug))
	}
	return c.JSON(category)
}

// GetCategoryPosts handles GET /api/categories/:slug/posts
func (s *Server) GetCategoryPosts(c *fiber.Ctx) error {
	slug := c.Params("slug")
	userID, _ := s.optionalUserID(c)
	p := parsePagination(c, 20)

	posts, err := s.postService.GetCategoryPosts(c.Context(), slug, p.Limit, p.Offset, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}
