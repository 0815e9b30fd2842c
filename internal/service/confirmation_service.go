package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/tutor-market/pkg/errors"
)

// ConfirmationKind distinguishes what a confirmation token refers to.
type ConfirmationKind string

const (
	ConfirmationBooking ConfirmationKind = "booking"
	ConfirmationRequest ConfirmationKind = "request"
)

const confirmationTokenIssuer = "tutor-market"

type confirmationCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type confirmationClaims struct {
	Kind ConfirmationKind `json:"kind"`
	jwt.RegisteredClaims
}

// ConfirmationService stores the echo of a successful submission under a
// one-time id and hands the client a signed token referring to it. The
// confirmation pages resolve the token instead of reading session state.
type ConfirmationService struct {
	cache  confirmationCache
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// NewConfirmationService constructs a ConfirmationService.
func NewConfirmationService(cache confirmationCache, secret string, ttl time.Duration, logger *zap.Logger) *ConfirmationService {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfirmationService{cache: cache, secret: []byte(secret), ttl: ttl, now: time.Now, logger: logger}
}

// Issue stores payload and returns the token that unlocks it.
func (s *ConfirmationService) Issue(ctx context.Context, kind ConfirmationKind, payload interface{}) (string, error) {
	if len(s.secret) == 0 {
		return "", appErrors.Clone(appErrors.ErrInternal, "confirmation secret missing")
	}
	id := uuid.NewString()
	if err := s.cache.Set(ctx, confirmationKey(kind, id), payload, s.ttl); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store confirmation")
	}

	issuedAt := s.now().UTC()
	claims := &confirmationClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    confirmationTokenIssuer,
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign confirmation")
	}
	return signed, nil
}

// Resolve loads the payload referenced by token into dest. Missing, forged,
// expired or mismatched tokens are all reported as not found.
func (s *ConfirmationService) Resolve(ctx context.Context, kind ConfirmationKind, token string, dest interface{}) error {
	notFound := appErrors.Clone(appErrors.ErrNotFound, "confirmation not found")
	if token == "" {
		return notFound
	}

	claims := &confirmationClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(confirmationTokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		s.logger.Debug("confirmation token rejected", zap.Error(err))
		return notFound
	}
	if claims.Kind != kind || claims.Subject == "" {
		return notFound
	}

	hit, err := s.cache.Get(ctx, confirmationKey(kind, claims.Subject), dest)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load confirmation")
	}
	if !hit {
		return notFound
	}
	return nil
}

func confirmationKey(kind ConfirmationKind, id string) string {
	return fmt.Sprintf("confirmation:%s:%s", kind, id)
}
