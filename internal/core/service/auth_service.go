package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
	"github.com/bikeworks/assembly-tracker/internal/core/ports"
	"github.com/bikeworks/assembly-tracker/internal/pkg/metrics"
)

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// timingHash returns a throwaway bcrypt hash compared against when the username
// is unknown, so both failure paths cost one bcrypt comparison.
func timingHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("assembly-line"), bcrypt.DefaultCost)
	})
	return dummyHash
}

// AuthService verifies employee credentials and opens the login session.
type AuthService struct {
	repo      ports.AuthRepository
	throttle  ports.LoginThrottle
	jwtSecret string
	log       zerolog.Logger
	now       func() time.Time
}

// NewAuthService returns an AuthService. throttle may be nil, in which case
// failed attempts are not limited.
func NewAuthService(repo ports.AuthRepository, throttle ports.LoginThrottle, jwtSecret string, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo:      repo,
		throttle:  throttle,
		jwtSecret: jwtSecret,
		log:       log,
		now:       time.Now,
	}
}

// Login authenticates the employee, mints a bearer token and opens an assembly
// record against the selected bike. The token is only returned once the token
// write and the record insert have both committed.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (string, error) {
	if in.Username == "" || in.Password == "" || in.SelectedBike == "" {
		metrics.LoginsTotal.WithLabelValues("invalid_input").Inc()
		return "", domain.ErrMissingLoginFields
	}

	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, in.Username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", in.Username).Msg("login throttle check failed, continuing")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return "", domain.ErrTooManyAttempts
		}
	}

	employee, err := s.repo.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			_ = bcrypt.CompareHashAndPassword(timingHash(), []byte(in.Password))
			s.rejectCredentials(ctx, in.Username)
			return "", domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Str("username", in.Username).Msg("failed to fetch employee")
		return "", domain.NewPersistenceError("Failed to fetch employee.", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(in.Password)); err != nil {
		s.rejectCredentials(ctx, in.Username)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(employee)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("sign token: %w", err)
	}

	record, err := s.repo.OpenSession(ctx, employee, token, in.SelectedBike)
	if err != nil {
		if errors.Is(err, domain.ErrSessionAlreadyOpen) {
			metrics.LoginsTotal.WithLabelValues("session_open").Inc()
			return "", err
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Int64("employee_id", employee.ID).Msg("failed to open session")
		return "", domain.NewPersistenceError("Login failed. Please try again later.", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, in.Username); err != nil {
			s.log.Warn().Err(err).Str("username", in.Username).Msg("failed to reset login throttle")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().
		Int64("employee_id", employee.ID).
		Int64("record_id", record.ID).
		Str("bike_id", record.BikeID).
		Msg("employee logged in")

	return token, nil
}

func (s *AuthService) rejectCredentials(ctx context.Context, username string) {
	metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}

// generateToken signs the employee identity. The token deliberately carries no
// exp claim; it stays valid until the next login replaces it on the row.
func (s *AuthService) generateToken(employee *domain.Employee) (string, error) {
	claims := jwt.MapClaims{
		"id":       employee.ID,
		"username": employee.Username,
		"role":     employee.Role,
		"iat":      s.now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
