package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"linq/internal/domain"
	"linq/internal/repository"
)

const minPhoneLength = 5

// TokenManager issues and validates session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager with the given signing secret.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Generate signs a session token for a user.
func (m *TokenManager) Generate(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"phone": user.Phone,
		"role":  string(user.Role),
		"exp":   time.Now().Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses a session token and returns the user ID it carries.
func (m *TokenManager) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return id, nil
}

// AuthService implements the simulated OTP onboarding: request a code for a
// phone number, verify it, receive a session token. Codes are generated in
// process and logged; no SMS is sent.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *TokenManager

	mu    sync.Mutex
	codes map[string]string
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		codes:    make(map[string]string),
	}
}

// RequestOTP issues a 4-digit code for a phone number. The code is returned
// so the demo client can display it.
func (s *AuthService) RequestOTP(ctx context.Context, phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if len(phone) < minPhoneLength {
		return "", ErrInvalidPhone
	}

	code := fmt.Sprintf("%04d", rand.Intn(10000))
	s.mu.Lock()
	s.codes[phone] = code
	s.mu.Unlock()

	log.Printf("[OTP] phone=%s code=%s", phone, code)
	return code, nil
}

// VerifyOTP checks the code for a phone number and returns a session token.
// First-time numbers get a fresh rider account.
func (s *AuthService) VerifyOTP(ctx context.Context, phone, code string) (string, *domain.User, error) {
	phone = strings.TrimSpace(phone)
	if len(phone) < minPhoneLength {
		return "", nil, ErrInvalidPhone
	}
	if len(code) != 4 {
		return "", nil, ErrInvalidOTP
	}

	s.mu.Lock()
	expected, ok := s.codes[phone]
	s.mu.Unlock()
	if !ok || expected != code {
		return "", nil, ErrInvalidOTP
	}

	s.mu.Lock()
	delete(s.codes, phone)
	s.mu.Unlock()

	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err == repository.ErrNotFound {
		user = &domain.User{
			ID:    uuid.New().String(),
			Phone: phone,
			Role:  domain.RoleRider,
			Verification: domain.VerificationStatus{
				Phone: true,
			},
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return "", nil, err
		}
	} else if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
