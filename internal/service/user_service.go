package service

import (
	"context"
	"strings"

	"github.com/blog-posts-api/internal/auth"
	"github.com/blog-posts-api/internal/models"
	"github.com/blog-posts-api/internal/repository"
	"github.com/blog-posts-api/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of UserService
type userService struct {
	users         repository.UserRepository
	authenticator *auth.Authenticator
	log           zerolog.Logger
}

// newUserService creates a new UserService
func newUserService(users repository.UserRepository, authenticator *auth.Authenticator, log zerolog.Logger) *userService {
	return &userService{
		users:         users,
		authenticator: authenticator,
		log:           log.With().Str("service", "user").Logger(),
	}
}

// Register creates a new non-staff account. Staff accounts are only
// provisioned out of band.
func (s *userService) Register(ctx context.Context, in *models.RegisterInput) (*models.User, error) {
	if err := newValidationError(validation.ValidateRegisterInput(in)); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, newValidationError([]validation.ValidationError{
			{Field: "email", Message: "email is already registered", Value: email},
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: string(hash),
		IsStaff:      false,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("User registered")
	return user, nil
}

// Login verifies credentials and returns a signed token for the user
func (s *userService) Login(ctx context.Context, in *models.LoginInput) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !user.Active {
		return "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.authenticator.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("User logged in")
	return token, user, nil
}
