package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/dhruvkrishnavaid/oceaneye/internal/model"
	"github.com/dhruvkrishnavaid/oceaneye/internal/observability"
	"github.com/dhruvkrishnavaid/oceaneye/internal/repository"
)

// AuthService holds the logged-in user and session token. Login is a
// mocked credential flow: it waits a fixed simulated delay, always
// succeeds, and fabricates an admin user with a signed token. The snapshot
// (user, token, isAuthenticated) persists across restarts; isLoading never
// does.
type AuthService struct {
	sessions   *repository.SessionRepository
	clock      clockwork.Clock
	metrics    *observability.Metrics
	jwtSecret  string
	expiration time.Duration
	loginDelay time.Duration

	mu              sync.RWMutex
	user            *model.User
	token           string
	isAuthenticated bool
	isLoading       bool
}

func NewAuthService(sessions *repository.SessionRepository, clock clockwork.Clock, metrics *observability.Metrics, jwtSecret string, expiration, loginDelay time.Duration) *AuthService {
	s := &AuthService{
		sessions:   sessions,
		clock:      clock,
		metrics:    metrics,
		jwtSecret:  jwtSecret,
		expiration: expiration,
		loginDelay: loginDelay,
	}
	s.restore()
	return s
}

// restore reloads the persisted snapshot, if any.
func (s *AuthService) restore() {
	snap, err := s.sessions.Load()
	if err != nil {
		logrus.Warnf("Failed to restore auth session: %v", err)
		return
	}
	if snap == nil {
		return
	}
	s.mu.Lock()
	s.user = snap.User
	s.token = snap.Token
	s.isAuthenticated = snap.IsAuthenticated
	s.mu.Unlock()
	if snap.User != nil {
		logrus.Infof("Restored auth session for %s", snap.User.Email)
	}
}

// Login fabricates a session for the given email after the simulated
// delay. The password is accepted as-is; no credential check happens here.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	if s.loginDelay > 0 {
		select {
		case <-s.clock.After(s.loginDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	now := s.clock.Now()
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         "Admin User",
		Role:         model.RoleAdmin,
		Organization: "Ocean Monitoring Center",
		CreatedAt:    now,
		LastLoginAt:  &now,
	}

	token, err := s.generateToken(user, now)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	s.isAuthenticated = true
	s.mu.Unlock()

	s.persist()
	s.metrics.LoginsTotal.Inc()
	logrus.Infof("User %s logged in", email)

	return &model.LoginResponse{Token: token, User: *user}, nil
}

// Logout clears the session and drops the persisted snapshot.
func (s *AuthService) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.isAuthenticated = false
	s.isLoading = false
	s.mu.Unlock()

	if err := s.sessions.Clear(); err != nil {
		logrus.Warnf("Failed to clear persisted session: %v", err)
	}
}

// Current returns the logged-in user, or false when no session exists.
func (s *AuthService) Current() (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.isAuthenticated || s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

func (s *AuthService) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

// UpdateUser merges partial profile changes into the current user.
// Reports whether a user was logged in to update.
func (s *AuthService) UpdateUser(updates *model.UserUpdate) bool {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return false
	}
	if updates.Name != nil {
		s.user.Name = *updates.Name
	}
	if updates.Organization != nil {
		s.user.Organization = *updates.Organization
	}
	if updates.Avatar != nil {
		s.user.Avatar = *updates.Avatar
	}
	s.mu.Unlock()

	s.persist()
	return true
}

// ValidateToken parses and verifies a session token.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func (s *AuthService) generateToken(user *model.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"role":    string(user.Role),
		"jti":     uuid.New().String(),
		"exp":     now.Add(s.expiration).Unix(),
		"iat":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// persist writes the durable snapshot. A persistence failure degrades to
// an in-memory session rather than failing the login.
func (s *AuthService) persist() {
	s.mu.RLock()
	snap := &model.SessionSnapshot{
		User:            s.user,
		Token:           s.token,
		IsAuthenticated: s.isAuthenticated,
	}
	s.mu.RUnlock()

	if err := s.sessions.Save(snap); err != nil {
		logrus.Warnf("Failed to persist auth session: %v", err)
	}
}

func (s *AuthService) setLoading(v bool) {
	s.mu.Lock()
	s.isLoading = v
	s.mu.Unlock()
}
