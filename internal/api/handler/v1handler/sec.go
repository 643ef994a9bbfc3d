package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"outreach/internal/api/specs/v1specs"
	"outreach/internal/config"
	"outreach/pkg/domain"
	"outreach/pkg/logger"
	"outreach/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey int

// UserIDKey holds the authenticated domain.UserID in a request context.
const UserIDKey ctxKey = iota

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

type SecHandler struct {
	key *rsa.PublicKey
}

// Ensure SecHandler implements v1specs.SecurityHandler.
var _ v1specs.SecurityHandler = (*SecHandler)(nil)

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// HandleBearerAuth verifies an RS256 token and stores its subject as the
// caller's user ID.
func (s SecHandler) HandleBearerAuth(
	ctx context.Context,
	_ v1specs.OperationName,
	t v1specs.BearerAuth) (context.Context, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(t.Token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = context.WithValue(ctx, UserIDKey, domain.UserID(uid))
	ctx = logger.WithFields(ctx, zap.String("userID", uid.String()))

	return ctx, nil
}

// GetUserIDFromContext returns the user set by HandleBearerAuth.
func GetUserIDFromContext(ctx context.Context) (domain.UserID, error) {
	uid, ok := ctx.Value(UserIDKey).(domain.UserID)
	if !ok {
		return domain.UserID{}, serrors.KindOnly(serrors.ErrUnauthorized)
	}

	return uid, nil
}
