package services

import (
	"errors"
	"fmt"
	"time"

	"bloglist/internal/models"
	"bloglist/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login, and the token lifecycle.
//
// Tokens are stateless HS256 JWTs valid for a fixed 24 hours from
// issuance. There is no revocation before expiry; logout is a
// client-side discard of the token.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which a token is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// RegisterUser creates a user with a bcrypt-hashed password. The
// plaintext password never reaches the repository.
func (s *AuthService) RegisterUser(username, name, password string) (*models.User, error) {
	if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
		return nil, fmt.Errorf("username '%s': %w", username, ErrDuplicateUsername)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Name:     name,
		Password: string(hashedPassword),
		BlogIDs:  []string{},
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// GetAllUsers lists registered users. Password hashes are excluded at
// the serialization layer, not here.
func (s *AuthService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// LoginUser authenticates a user and returns a signed token together
// with the user record. Unknown usernames and wrong passwords both
// surface as ErrInvalidCredentials so login reveals nothing about
// which usernames exist.
func (s *AuthService) LoginUser(username, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// IssueToken signs a token carrying the user's id and username,
// expiring tokenDurat from now.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenDurat).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// VerifyToken checks the signature and expiry of a token and returns
// its claims. Failures are reported per class: ErrMalformedToken for
// unparseable input, ErrExpiredToken for a past expiry, and
// ErrInvalidSignature for a bad signature or unexpected algorithm. An
// expired but correctly signed token is never reported as a signature
// failure.
func (s *AuthService) VerifyToken(tokenString string) (jwt.MapClaims, error) {
	if tokenString == "" {
		return nil, ErrMalformedToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) {
			switch {
			case ve.Errors&jwt.ValidationErrorMalformed != 0:
				return nil, ErrMalformedToken
			case ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0:
				return nil, ErrExpiredToken
			default:
				return nil, ErrInvalidSignature
			}
		}
		return nil, ErrMalformedToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSignature
	}
	return claims, nil
}

// ResolveIdentity looks up the user referenced by verified claims.
// A token whose user no longer exists verifies fine but resolves to
// ErrUnknownIdentity.
func (s *AuthService) ResolveIdentity(claims jwt.MapClaims) (*models.User, error) {
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return nil, ErrMalformedToken
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, ErrUnknownIdentity)
		}
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}
	return user, nil
}
