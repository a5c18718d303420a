package middleware

import (
	"context"
	"errors"
	"strings"

	"go-ems/internal/account"
	"go-ems/internal/credential"
	"go-ems/internal/domain"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/contextutil"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const currentAccountKey = "current_account"

// TokenVerifier returns the subject id carried by a session token.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// AccountLoader loads a live account; nil means absent or soft-deleted.
type AccountLoader interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
}

var (
	errMissingToken = apperror.New(apperror.CodeUnauthenticated, "Authorization token is missing", 401)
	errInvalidToken = apperror.New(apperror.CodeUnauthenticated, "Invalid token", 401)
	errExpiredToken = apperror.New(apperror.CodeUnauthenticated, "Token has expired", 401)
	errUnknownUser  = apperror.New(apperror.CodeUnauthenticated, "User no longer exists", 401)
)

// Authenticate requires a valid bearer token whose subject is a live account.
func Authenticate(tokens TokenVerifier, accounts AccountLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			abortWithError(c, errMissingToken)
			return
		}
		if err := authenticate(c, tokens, accounts, raw); err != nil {
			abortWithError(c, err)
			return
		}
		c.Next()
	}
}

// OptionalAuthenticate lets anonymous requests through. A token that is
// present but invalid is still rejected.
func OptionalAuthenticate(tokens TokenVerifier, accounts AccountLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(c.GetHeader("Authorization")) == "" {
			c.Next()
			return
		}
		raw, ok := bearerToken(c)
		if !ok {
			abortWithError(c, errInvalidToken)
			return
		}
		if err := authenticate(c, tokens, accounts, raw); err != nil {
			abortWithError(c, err)
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, tokens TokenVerifier, accounts AccountLoader, raw string) error {
	ctx := c.Request.Context()
	log := contextutil.GetLogger(ctx, zap.L())

	subject, err := tokens.Verify(raw)
	if err != nil {
		if errors.Is(err, credential.ErrTokenExpired) {
			return errExpiredToken
		}
		log.Debug("token rejected", zap.Error(err))
		return errInvalidToken
	}

	acc, err := accounts.FindActiveByID(ctx, subject)
	if err != nil {
		log.Error("load authenticated account failed", zap.Error(err))
		return err
	}
	if acc == nil {
		return errUnknownUser
	}

	SetCurrentAccount(c, acc)
	return nil
}

// RequireRoles must run after Authenticate.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc := CurrentAccount(c)
		if acc == nil {
			abortWithError(c, apperror.ErrUnauthenticated)
			return
		}

		for _, role := range roles {
			if acc.Role == role {
				c.Next()
				return
			}
		}

		contextutil.GetLogger(c.Request.Context(), zap.L()).Warn("role not allowed",
			zap.String("role", acc.Role.String()),
			zap.String("path", c.FullPath()),
		)
		abortWithError(c, apperror.ErrUnauthorized)
	}
}

// CurrentAccount returns the account attached by Authenticate, or nil.
func CurrentAccount(c *gin.Context) *account.Account {
	v, ok := c.Get(currentAccountKey)
	if !ok {
		return nil
	}
	acc, _ := v.(*account.Account)
	return acc
}

// SetCurrentAccount attaches acc to the gin context and tags the request
// context and logger with its id.
func SetCurrentAccount(c *gin.Context, acc *account.Account) {
	c.Set(currentAccountKey, acc)

	ctx := c.Request.Context()
	uid := acc.ID.String()
	ctx = contextutil.WithUserID(ctx, uid)
	ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", uid)))
	c.Request = c.Request.WithContext(ctx)
}

func bearerToken(c *gin.Context) (string, bool) {
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func abortWithError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Abort(c, httpErr.Status, httpErr.Code, httpErr.Message)
}
