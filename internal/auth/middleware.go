package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/reporting-service/internal/domain"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

const identityKey = "auth_identity"

// Identity is the decoded token payload attached to each request. It is the
// state the token asserted at issuance; profile edits made after login are
// not reflected until the token is reissued.
type Identity struct {
	UserID    int64
	Name      string
	Role      domain.Role
	Email     *string
	StudentID *string
	TokenID   string
	ExpiresAt time.Time
}

// AuthMiddleware validates bearer tokens and attaches identities. It never
// re-reads the credential store: trust is placed in the signed claims.
type AuthMiddleware struct {
	tokens  *TokenManager
	revoked *RevocationList
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, revoked *RevocationList) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, revoked: revoked}
}

// Handle enforces authentication for protected routes. A missing token is
// 401; a token that fails signature, expiry, or revocation checks is 403.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("access token required")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("access token required")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewForbidden("invalid or expired token")
	}

	if m.revoked.IsRevoked(c.Context(), claims.ID) {
		return apperrors.NewForbidden("invalid or expired token")
	}

	identity := &Identity{
		UserID:    claims.UserID,
		Name:      claims.Name,
		Role:      claims.Role,
		Email:     claims.Email,
		StudentID: claims.StudentID,
		TokenID:   claims.ID,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	c.Locals(identityKey, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
