package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5/request"
	"github.com/google/uuid"
	"github.com/handlewall/backend/httpjson"
	"github.com/handlewall/backend/logger"
)

// TokenVerifier resolves a bearer token to the admin it was issued for.
type TokenVerifier interface {
	VerifyToken(token string) (uuid.UUID, error)
}

type ctxKeyType string

const ctxAdminIDKey ctxKeyType = "adminId"

// WithAdminID stores the authenticated admin id in ctx.
func WithAdminID(ctx context.Context, adminID uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxAdminIDKey, adminID)
}

// AdminIDFromContext returns the admin id put there by the auth middleware.
func AdminIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	adminID, ok := ctx.Value(ctxAdminIDKey).(uuid.UUID)
	return adminID, ok
}

// RequireAdmin rejects requests without a valid bearer token before they
// reach next. On success the admin id is attached to the request context.
func RequireAdmin(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, err := request.BearerExtractor{}.ExtractToken(r)
			if errors.Is(err, request.ErrNoTokenInRequest) || (err == nil && token == "") {
				httpjson.HandleErrorWithContext(r, w, ErrMissingToken())
				return
			}
			if err != nil {
				httpjson.HandleErrorWithContext(r, w, ErrInvalidToken().SetDebug(err))
				return
			}

			adminID, err := verifier.VerifyToken(token)
			if err != nil {
				httpjson.HandleErrorWithContext(r, w, err)
				return
			}

			ctx := WithAdminID(r.Context(), adminID)
			log := logger.FromContext(ctx).With("admin_id", adminID.String())
			ctx = logger.WithLogger(ctx, log)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
