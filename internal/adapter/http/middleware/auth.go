package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"oficina/pkg"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"

	ctxUserID = "user_id"
	ctxRole   = "role"
)

var (
	errAuthHeaderMissing = pkg.NewDomainErrorSimple("AUTH_HEADER_MISSING", "Authorization header is required", http.StatusUnauthorized)
	errInvalidAuthFormat = pkg.NewDomainErrorSimple("INVALID_AUTH_FORMAT", "Authorization header must be Bearer <token>", http.StatusUnauthorized)
	errInvalidToken      = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden         = pkg.NewDomainErrorSimple("FORBIDDEN", "Access denied: insufficient permissions", http.StatusForbidden)
)

// Claims carried by staff tokens.
type Claims struct {
	Role string `json:"role"`
	jwtlib.RegisteredClaims
}

// RequireRoles validates an HS256 bearer token and checks its role claim.
// With an empty secret every request passes.
func RequireRoles(secret string, roles ...string) gin.HandlerFunc {
	if secret == "" {
		zap.L().Warn("[auth][middleware] JWT_SECRET not set, role guard disabled", zap.Strings("roles", roles))
		return func(c *gin.Context) { c.Next() }
	}
	key := []byte(secret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, errAuthHeaderMissing)
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abort(c, errInvalidAuthFormat)
			return
		}

		claims, err := parseToken(strings.TrimSpace(token), key)
		if err != nil {
			zap.L().Debug("[auth][middleware] token rejected", zap.Error(err))
			abort(c, errInvalidToken)
			return
		}
		if len(roles) > 0 && !slices.Contains(roles, claims.Role) {
			abort(c, errForbidden)
			return
		}

		c.Set(ctxUserID, claims.Subject)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

func parseToken(raw string, key []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwtlib.ParseWithClaims(raw, claims, func(t *jwtlib.Token) (any, error) {
		return key, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
