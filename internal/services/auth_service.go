package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"contactlog/internal/models"
	"contactlog/internal/repositories"
	"contactlog/internal/validation"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and token validation.
type AuthService struct {
	userRepo   repositories.UserRepository
	validate   *validation.Validator
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
	dummyHash  []byte        // compared against when the username is unknown
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, validate *validation.Validator, jwtSecret string) *AuthService {
	// A login attempt for an unknown username still pays for one bcrypt
	// comparison, so response timing does not reveal whether the
	// username exists.
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("no-such-user"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("services: generating dummy hash: %v", err))
	}
	return &AuthService{
		userRepo:   userRepo,
		validate:   validate,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: time.Hour, // Token valid for 1 hour
		dummyHash:  dummyHash,
	}
}

// Register validates the registration request, hashes the password and
// stores the new user. The plaintext password is never persisted, and the
// returned record never contains the hash.
func (s *AuthService) Register(username, name, password string) (models.UserResponse, error) {
	// The password only exists at registration time, so its policy is
	// checked here rather than on the stored record.
	if len(password) < 3 {
		return models.UserResponse{}, validation.NewRecordError("password must be at least 3 characters long")
	}

	user := models.User{
		Username: username,
		Name:     name,
	}
	if err := s.validate.Struct(user); err != nil {
		return models.UserResponse{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashedPassword)

	if err := s.userRepo.Create(&user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.UserResponse{}, &ConflictError{Field: "username"}
		}
		return models.UserResponse{}, err
	}
	return user.External(), nil
}

// Login authenticates a user and returns a signed token plus the user's
// external record. Any failure yields the same generic error.
func (s *AuthService) Login(username, password string) (string, models.UserResponse, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		// Only an absent user may turn into the generic credential
		// error; a storage failure must keep its own category.
		if !errors.Is(err, repositories.ErrNotFound) {
			return "", models.UserResponse{}, err
		}
		// Burn a comparison so unknown usernames cost the same as
		// wrong passwords.
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return "", models.UserResponse{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.UserResponse{}, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenDurat).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", models.UserResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, user.External(), nil
}

// Users lists all registered users in their external form.
func (s *AuthService) Users() ([]models.UserResponse, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].External())
	}
	return responses, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
