package handlers

import (
	"log"
	"time"

	"contactlog/internal/models"
	"contactlog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PersonHandler handles HTTP requests for phonebook entries.
type PersonHandler struct {
	service *services.PersonService
}

// NewPersonHandler creates a new PersonHandler.
func NewPersonHandler(service *services.PersonService) *PersonHandler {
	return &PersonHandler{
		service: service,
	}
}

// RegisterRoutes registers the phonebook routes with the Fiber app.
func (h *PersonHandler) RegisterRoutes(router fiber.Router) {
	personRoutes := router.Group("/persons")
	personRoutes.Get("/", h.HandleList)
	personRoutes.Get("/:id", h.HandleGet)
	personRoutes.Post("/", h.HandleCreate)
	personRoutes.Put("/:id", h.HandleUpdate)
	personRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList retrieves all phonebook entries.
func (h *PersonHandler) HandleList(c *fiber.Ctx) error {
	persons, err := h.service.List()
	if err != nil {
		log.Printf("Error listing persons: %v", err)
		return writeError(c, err)
	}
	return c.JSON(persons)
}

// HandleGet retrieves a single phonebook entry by its ID.
func (h *PersonHandler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("id")
	person, err := h.service.Get(id)
	if err != nil {
		log.Printf("Error getting person %s: %v", id, err)
		return writeError(c, err)
	}
	return c.JSON(person)
}

// HandleCreate creates a new phonebook entry.
func (h *PersonHandler) HandleCreate(c *fiber.Ctx) error {
	var person models.Person
	if err := c.BodyParser(&person); err != nil {
		log.Printf("Error parsing person request body: %v", err)
		return writeBadBody(c)
	}

	created, err := h.service.Create(person)
	if err != nil {
		log.Printf("Error creating person: %v", err)
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdate replaces an existing phonebook entry in full.
func (h *PersonHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	var person models.Person
	if err := c.BodyParser(&person); err != nil {
		log.Printf("Error parsing person request body: %v", err)
		return writeBadBody(c)
	}

	updated, err := h.service.Update(id, person)
	if err != nil {
		log.Printf("Error updating person %s: %v", id, err)
		return writeError(c, err)
	}
	return c.JSON(updated)
}

// HandleDelete removes a phonebook entry by its ID.
func (h *PersonHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(id); err != nil {
		log.Printf("Error deleting person %s: %v", id, err)
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleInfo reports the phonebook size and the current server time.
func (h *PersonHandler) HandleInfo(c *fiber.Ctx) error {
	count, err := h.service.Count()
	if err != nil {
		log.Printf("Error counting persons: %v", err)
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"count": count,
		"time":  time.Now().Format(time.RFC3339),
	})
}
