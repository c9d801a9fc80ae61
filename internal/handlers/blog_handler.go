package handlers

import (
	"log"

	"contactlog/internal/models"
	"contactlog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// BlogHandler handles HTTP requests for blog entries.
type BlogHandler struct {
	service *services.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service *services.BlogService) *BlogHandler {
	return &BlogHandler{
		service: service,
	}
}

// RegisterRoutes registers the blog routes with the Fiber app. Reads are
// public; mutations go through the supplied auth middleware.
func (h *BlogHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	blogRoutes := router.Group("/blogs")
	blogRoutes.Get("/", h.HandleList)
	blogRoutes.Get("/:id", h.HandleGet)
	blogRoutes.Post("/", requireAuth, h.HandleCreate)
	blogRoutes.Put("/:id", requireAuth, h.HandleUpdate)
	blogRoutes.Delete("/:id", requireAuth, h.HandleDelete)
}

// HandleList retrieves all blog entries.
func (h *BlogHandler) HandleList(c *fiber.Ctx) error {
	blogs, err := h.service.List()
	if err != nil {
		log.Printf("Error listing blogs: %v", err)
		return writeError(c, err)
	}
	return c.JSON(blogs)
}

// HandleGet retrieves a single blog entry by its ID.
func (h *BlogHandler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("id")
	blog, err := h.service.Get(id)
	if err != nil {
		log.Printf("Error getting blog %s: %v", id, err)
		return writeError(c, err)
	}
	return c.JSON(blog)
}

// HandleCreate creates a new blog entry.
func (h *BlogHandler) HandleCreate(c *fiber.Ctx) error {
	var blog models.Blog
	if err := c.BodyParser(&blog); err != nil {
		log.Printf("Error parsing blog request body: %v", err)
		return writeBadBody(c)
	}

	created, err := h.service.Create(blog)
	if err != nil {
		log.Printf("Error creating blog: %v", err)
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdate replaces an existing blog entry in full.
func (h *BlogHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	var blog models.Blog
	if err := c.BodyParser(&blog); err != nil {
		log.Printf("Error parsing blog request body: %v", err)
		return writeBadBody(c)
	}

	updated, err := h.service.Update(id, blog)
	if err != nil {
		log.Printf("Error updating blog %s: %v", id, err)
		return writeError(c, err)
	}
	return c.JSON(updated)
}

// HandleDelete removes a blog entry by its ID.
func (h *BlogHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(id); err != nil {
		log.Printf("Error deleting blog %s: %v", id, err)
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
