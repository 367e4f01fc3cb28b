package middleware

import (
	"context"
	"errors"
	"strings"
	"touchhub/backend/internal/api/models"
	"touchhub/backend/internal/api/response"
	"touchhub/backend/internal/api/service"
	"touchhub/backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const currentUserKey = "touchhub.current_user"

// Authenticator resolves a bearer token to a stored user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// RequireUser rejects requests without a valid bearer token with 401 and
// stores the resolved user on the context for CurrentUser.
func RequireUser(authn Authenticator, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			m.AuthFailure(metrics.ReasonMissingToken)
			response.Unauthorized(c, response.MsgCouldNotValidate)
			return
		}

		user, err := authn.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				m.AuthFailure(metrics.ReasonInvalidToken)
				response.Unauthorized(c, response.MsgCouldNotValidate)
				return
			}
			response.InternalError(c, err)
			return
		}

		trace.SpanFromContext(c.Request.Context()).SetAttributes(attribute.Int64("user.id", user.ID))
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireUser.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// bearerToken extracts the credentials of an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
