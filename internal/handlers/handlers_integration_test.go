package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"contactlog/internal/handlers"
	"contactlog/internal/middleware"
	"contactlog/internal/models"
	"contactlog/internal/repositories"
	"contactlog/internal/services"
	"contactlog/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp builds the full application against a per-test in-memory SQLite
// database, mirroring the wiring in main.
func setupApp(t *testing.T) (*fiber.App, error) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to in-memory database: %w", err)
	}
	if err := db.AutoMigrate(&models.Person{}, &models.Blog{}, &models.User{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	validate := validation.New()

	personRepo := repositories.NewGORMPersonRepository(db)
	blogRepo := repositories.NewGORMBlogRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	personService := services.NewPersonService(personRepo, validate, nil)
	blogService := services.NewBlogService(blogRepo, validate, nil)
	authService := services.NewAuthService(userRepo, validate, "test_jwt_secret")

	personHandler := handlers.NewPersonHandler(personService)
	blogHandler := handlers.NewBlogHandler(blogService)
	userHandler := handlers.NewUserHandler(authService)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New()

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	personHandler.RegisterRoutes(api)
	blogHandler.RegisterRoutes(api, middleware.AuthRequired(authService))

	app.Get("/info", personHandler.HandleInfo)
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown endpoint",
		})
	})

	return app, nil
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func registerAndLogin(t *testing.T, app *fiber.App, username, name, password string) string {
	t.Helper()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/users", map[string]string{
		"username": username,
		"name":     name,
		"password": password,
	}), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/login", map[string]string{
		"username": username,
		"password": password,
	}), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	login := decodeBody(t, resp)
	assert.Equal(t, username, login["username"])
	assert.Equal(t, name, login["name"])
	token, _ := login["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func TestUserRegistration(t *testing.T) {
	app, err := setupApp(t)
	assert.NoError(t, err)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/users", map[string]string{
		"username": "bob",
		"name":     "Bob",
		"password": "sekret",
	}), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "bob", created["username"])
	assert.NotContains(t, created, "passwordHash")
	assert.Len(t, created, 3)

	// Duplicate username: rejected in full.
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/users", map[string]string{
		"username": "bob",
		"name":     "Other Bob",
		"password": "hunter2",
	}), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "username must be unique", body["error"])

	// Short password: rejected before anything is stored.
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/users", map[string]string{
		"username": "carol",
		"name":     "Carol",
		"password": "ab",
	}), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Contains(t, body["error"], "password must be at least 3 characters long")

	// Listed users never expose the hash.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/users", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	var users []map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Len(t, users, 1)
	assert.NotContains(t, users[0], "passwordHash")
}

func TestLoginFailures(t *testing.T) {
	app, err := setupApp(t)
	assert.NoError(t, err)

	registerAndLogin(t, app, "bob", "Bob", "sekret")

	// Wrong password and unknown username produce the same response.
	for _, creds := range []map[string]string{
		{"username": "bob", "password": "wrongpass"},
		{"username": "nobody", "password": "sekret"},
	} {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/login", creds), -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "invalid username or password", body["error"])
	}
}

func TestBlogLifecycle(t *testing.T) {
	app, err := setupApp(t)
	assert.NoError(t, err)

	// Mutations require a token.
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/blogs", map[string]string{
		"title": "Go at scale",
	}), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	token := registerAndLogin(t, app, "bob", "Bob", "sekret")

	req := jsonRequest(http.MethodPost, "/api/blogs", map[string]string{
		"title":  "Go at scale",
		"author": "Rob",
		"url":    "https://example.com/post",
	})
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, float64(0), created["likes"])

	// Reads are public.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/blogs", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	var blogs []map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&blogs))
	assert.Len(t, blogs, 1)

	// Delete with the token, then confirm the second delete is a 404.
	id := created["id"].(string)
	req = httptest.NewRequest(http.MethodDelete, "/api/blogs/"+id, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	req = httptest.NewRequest(http.MethodDelete, "/api/blogs/"+id, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestPersonConflictOnDatabaseConstraint(t *testing.T) {
	app, err := setupApp(t)
	assert.NoError(t, err)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/persons", map[string]string{
		"name":   "Ada Lovelace",
		"number": "39-44-5323523",
	}), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// The uniqueness constraint lives in the database; the second create
	// must surface as a conflict, not a raw driver error.
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/persons", map[string]string{
		"name":   "Ada Lovelace",
		"number": "00-00000",
	}), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "name must be unique", body["error"])
}

func TestUnknownEndpoint(t *testing.T) {
	app, err := setupApp(t)
	assert.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nowhere", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "unknown endpoint", body["error"])
}
