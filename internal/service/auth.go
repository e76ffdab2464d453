package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vault93/storefront/internal/domain"
)

const (
	sessionTokenLifetime  = 24 * time.Hour
	rememberTokenLifetime = 30 * 24 * time.Hour
)

// SessionListener receives the new session after a login, or nil after
// a logout. Listeners run synchronously in registration order.
type SessionListener func(*domain.Session)

// AuthService handles registration, login, and JWT token operations.
// The active session is held in memory and mirrored to the session
// repository so it survives restarts. Session changes fan out to
// registered listeners.
type AuthService struct {
	users      domain.UserRepository
	sessions   domain.SessionRepository
	jwtSecret  []byte
	bcryptCost int

	mu          sync.RWMutex
	current     *domain.Session
	listenerSeq int
	listeners   []sessionListener
}

type sessionListener struct {
	id int
	fn SessionListener
}

// NewAuthService creates an AuthService and restores any persisted
// session. A storage failure during restore is logged and treated as
// no active session.
func NewAuthService(ctx context.Context, users domain.UserRepository, sessions domain.SessionRepository, jwtSecret string, bcryptCost int) *AuthService {
	s := &AuthService{
		users:      users,
		sessions:   sessions,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcryptCost,
	}

	current, err := sessions.Get(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		slog.Error("restore session", "error", err)
	}
	s.current = current

	return s
}

// SubscribeSession registers a listener for session changes. Listeners
// are invoked after login and logout with the new session state. The
// returned function removes the listener.
func (s *AuthService) SubscribeSession(fn SessionListener) func() {
	s.mu.Lock()
	s.listenerSeq++
	id := s.listenerSeq
	s.listeners = append(s.listeners, sessionListener{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Register creates a new user account after validating inputs, then
// logs the new user in. It returns the user and a signed token for
// the fresh session.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password, confirmPassword string) (*domain.User, string, error) {
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, email, and password are required", domain.ErrInvalidInput)
	}

	if password != confirmPassword {
		return nil, "", fmt.Errorf("%w: passwords do not match", domain.ErrInvalidInput)
	}

	if len(password) < 8 {
		return nil, "", fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	// Signing up establishes a session immediately.
	token, err := s.establishSession(ctx, user, false)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials, establishes the session, and returns a
// signed JWT token string.
func (s *AuthService) Login(ctx context.Context, email, password string, rememberMe bool) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}

	return s.establishSession(ctx, user, rememberMe)
}

func (s *AuthService) establishSession(ctx context.Context, user *domain.User, rememberMe bool) (string, error) {
	token, err := s.generateJWT(user, rememberMe)
	if err != nil {
		return "", fmt.Errorf("generate jwt: %w", err)
	}

	session := &domain.Session{
		UserID:     user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		RememberMe: rememberMe,
		CreatedAt:  time.Now().UTC(),
	}

	// The in-memory session is authoritative; persistence is
	// best-effort so a storage failure never blocks a login.
	if err := s.sessions.Replace(ctx, session); err != nil {
		slog.Error("persist session", "error", err)
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	s.notifySession(session)
	return token, nil
}

// Logout ends the active session. Logging out without a session is a
// no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	s.mu.Lock()
	hadSession := s.current != nil
	s.current = nil
	s.mu.Unlock()

	if !hadSession {
		return nil
	}

	if err := s.sessions.Delete(ctx); err != nil {
		slog.Error("delete session", "error", err)
	}

	s.notifySession(nil)
	return nil
}

// IsLoggedIn reports whether a session is active.
func (s *AuthService) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// CurrentUser returns a copy of the active session, or nil.
func (s *AuthService) CurrentUser() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	session := *s.current
	return &session
}

// ValidateToken parses and validates a JWT token string and checks it
// belongs to the active session. Returns the user ID from the sub
// claim.
func (s *AuthService) ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, domain.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	// A token outlives its session on logout; reject it then.
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.current.UserID != userID {
		return 0, domain.ErrUnauthorized
	}

	return userID, nil
}

// GetUserByID retrieves a user by their ID.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *AuthService) notifySession(session *domain.Session) {
	s.mu.RLock()
	listeners := make([]sessionListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, l := range listeners {
		var copied *domain.Session
		if session != nil {
			c := *session
			copied = &c
		}
		l.fn(copied)
	}
}

func (s *AuthService) generateJWT(user *domain.User, rememberMe bool) (string, error) {
	lifetime := sessionTokenLifetime
	if rememberMe {
		lifetime = rememberTokenLifetime
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"name":  user.FirstName + " " + user.LastName,
		"iat":   now.Unix(),
		"exp":   now.Add(lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
