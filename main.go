package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"

	"contactlog/internal/handlers"
	"contactlog/internal/middleware"
	"contactlog/internal/models"
	"contactlog/internal/repositories"
	"contactlog/internal/services"
	"contactlog/internal/validation"
	"contactlog/pkg/events"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openDatabase picks the driver from the DSN shape: anything that looks like
// a PostgreSQL DSN uses the postgres driver, everything else is treated as a
// SQLite path. TranslateError is required so uniqueness violations surface
// as gorm.ErrDuplicatedKey on both drivers.
func openDatabase(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if strings.HasPrefix(dsn, "postgres://") || strings.Contains(dsn, "host=") {
		return gorm.Open(postgres.Open(dsn), cfg)
	}
	return gorm.Open(sqlite.Open(dsn), cfg)
}

// NewApp builds the Fiber application: database, repositories, services,
// handlers and routes. The events client may be nil when no broker is
// configured.
func NewApp(mqClient *events.Client) (*fiber.App, error) {
	db, err := openDatabase(viper.GetString("DATABASE_DSN"))
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Person{}, &models.Blog{}, &models.User{}); err != nil {
		return nil, err
	}

	validate := validation.New()

	// --- Initialize Repositories ---
	personRepo := repositories.NewGORMPersonRepository(db)
	blogRepo := repositories.NewGORMBlogRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Initialize Services ---
	personService := services.NewPersonService(personRepo, validate, mqClient)
	blogService := services.NewBlogService(blogRepo, validate, mqClient)
	authService := services.NewAuthService(userRepo, validate, viper.GetString("JWT_SECRET"))

	// --- Initialize Handlers ---
	personHandler := handlers.NewPersonHandler(personService)
	blogHandler := handlers.NewBlogHandler(blogService)
	userHandler := handlers.NewUserHandler(authService)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	personHandler.RegisterRoutes(api)
	blogHandler.RegisterRoutes(api, middleware.AuthRequired(authService))

	// Phonebook summary, outside the /api prefix.
	app.Get("/info", personHandler.HandleInfo)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Anything unrouted, registered last.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown endpoint",
		})
	})

	return app, nil
}

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":3001")
	viper.SetDefault("DATABASE_DSN", "file:contactlog.db?cache=shared")
	viper.SetDefault("JWT_SECRET", "dev_secret")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize RabbitMQ Client (optional) ---
	var mqClient *events.Client
	if rabbitMQURL != "" {
		var err error
		mqClient, err = events.NewClient(events.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()

		// Consume record-change events; here they are only logged.
		go func() {
			log.Println("Starting RabbitMQ consumer for record events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received %s event (Tag: %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.Consume(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	app, err := NewApp(mqClient)
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
