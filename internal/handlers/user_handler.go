package handlers

import (
	"log"

	"contactlog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user registration and listing.
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleList)
	userRoutes.Post("/", h.HandleRegister)
}

// RegisterRequest represents the request body for registration. The
// plaintext password exists only here; it is hashed before storage.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// HandleRegister handles new user registration.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return writeBadBody(c)
	}

	user, err := h.authService.Register(req.Username, req.Name, req.Password)
	if err != nil {
		log.Printf("Error registering user %s: %v", req.Username, err)
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleList retrieves all registered users.
func (h *UserHandler) HandleList(c *fiber.Ctx) error {
	users, err := h.authService.Users()
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return writeError(c, err)
	}
	return c.JSON(users)
}
