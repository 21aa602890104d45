package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fencewise/field-service/internal/api/metrics"
	"github.com/fencewise/field-service/internal/core/domain"
	"github.com/fencewise/field-service/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// LoginThrottle abstracts the failed-login counter store (Redis). A nil
// throttle disables throttling entirely.
type LoginThrottle interface {
	// Allow reports whether the email is still under the failure threshold.
	Allow(ctx context.Context, email string) (bool, error)
	// RecordFailure bumps the failure counter for the email.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration, login, and token verification.
type AuthService struct {
	users     ports.UserRepository
	throttle  LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, throttle LoginThrottle, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{users: users, throttle: throttle, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleWorker
	}
	if !domain.ValidRole(role) {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(created.ID)
	if err != nil {
		return "", nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(role).Inc()
	s.log.Info().Str("user_id", created.ID).Str("role", role).Msg("user registered")

	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle check failed, continuing")
		} else if !allowed {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	// Suspension bites only here. Tokens issued before a suspension keep
	// authenticating until they expire.
	if !user.Active {
		metrics.LoginsTotal.WithLabelValues("suspended").Inc()
		return "", nil, domain.ErrUserSuspended
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

// VerifyToken validates a signed token and returns its subject user id.
func (s *AuthService) VerifyToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", domain.ErrInvalidToken
	}
	return sub, nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
}
