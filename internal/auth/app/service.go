package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/stonique/storefront/internal/auth/domain"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	keyAuthenticated = "isAuthenticated"
	keyUser          = "user"
	keyTheme         = "theme"
)

const passwordSpecials = "@$!%*?&"

var validate = validator.New()

// Service implements the mock authentication of the storefront: credentials
// are validated but never checked against anything, and the resulting user
// is persisted to the session's key-value store.
type Service struct {
	store StateStore
}

func NewService(store StateStore) *Service {
	return &Service{store: store}
}

// Login validates the credentials, marks the session authenticated and
// persists the user.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(email)

	if err := validate.Var(email, "required,email"); err != nil {
		return domain.User{}, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if len(password) < 8 {
		return domain.User{}, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	user := domain.User{
		ID:    uuid.NewString(),
		Email: email,
	}
	if err := s.saveUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

type SignupInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Signup validates the registration form and logs the new user in.
func (s *Service) Signup(ctx context.Context, in SignupInput) (domain.User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)

	if in.FirstName == "" {
		return domain.User{}, fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}
	if in.LastName == "" {
		return domain.User{}, fmt.Errorf("%w: last name is required", ErrInvalidInput)
	}
	if err := validate.Var(in.Email, "required,email"); err != nil {
		return domain.User{}, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if err := CheckPassword(in.Password); err != nil {
		return domain.User{}, err
	}
	if in.ConfirmPassword != in.Password {
		return domain.User{}, fmt.Errorf("%w: passwords must match", ErrInvalidInput)
	}

	user := domain.User{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}
	if err := s.saveUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// CheckPassword enforces the signup password policy: at least 8 characters
// with an uppercase letter, a lowercase letter, a digit and one of @$!%*?&.
func CheckPassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return fmt.Errorf("%w: password needs an uppercase letter, a lowercase letter, a number and a special character", ErrInvalidInput)
	}
	return nil
}

// Logout clears the persisted auth state. Logging out of an already
// logged-out session is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, keyAuthenticated); err != nil {
		return err
	}
	return s.store.Delete(ctx, keyUser)
}

// CurrentUser rehydrates the persisted user. Any missing or malformed
// state reads as logged out; it is never an error.
func (s *Service) CurrentUser(ctx context.Context) (domain.User, bool) {
	flag, err := s.store.Get(ctx, keyAuthenticated)
	if err != nil || flag != "true" {
		return domain.User{}, false
	}

	raw, err := s.store.Get(ctx, keyUser)
	if err != nil {
		return domain.User{}, false
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return domain.User{}, false
	}
	return user, true
}

// SetTheme persists the UI theme preference.
func (s *Service) SetTheme(ctx context.Context, theme string) error {
	if theme != "dark" && theme != "light" {
		return fmt.Errorf("%w: theme must be dark or light", ErrInvalidInput)
	}
	return s.store.Set(ctx, keyTheme, theme)
}

// Theme returns the persisted theme preference, defaulting to light.
func (s *Service) Theme(ctx context.Context) string {
	v, err := s.store.Get(ctx, keyTheme)
	if err != nil || v == "" {
		return "light"
	}
	return v
}

func (s *Service) saveUser(ctx context.Context, user domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, keyUser, string(data)); err != nil {
		return err
	}
	return s.store.Set(ctx, keyAuthenticated, "true")
}
