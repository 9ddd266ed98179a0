package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SubrotoKumar7/article-arena-server/internal/models"
	"github.com/SubrotoKumar7/article-arena-server/internal/repositories"
	"github.com/SubrotoKumar7/article-arena-server/pkg/identity"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// EmailKey is the context key the verified email is stored under.
const EmailKey = "userEmail"

// Authenticate resolves the bearer credential through the identity provider
// and stores the verified email in the request context. No credential or a
// credential the provider rejects ends the request with 401.
func Authenticate(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const bearerSchema = "Bearer "

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		if !strings.HasPrefix(authHeader, bearerSchema) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		email, err := verifier.VerifyIDToken(c.Request.Context(), authHeader[len(bearerSchema):])
		if err != nil {
			slog.Warn("token verification failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		c.Set(EmailKey, email)
		c.Next()
	}
}

// RequireRole looks up the verified email's account and ends the request
// with 403 unless the account holds the required role. A verified token
// with no account behind it is treated as unauthorized, not forbidden.
func RequireRole(userRepo repositories.UserRepository, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := CurrentEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		user, err := userRepo.FindByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
				return
			}
			slog.Error("role lookup failed", "error", err, "email", email)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		c.Next()
	}
}

// CurrentEmail returns the verified email stored by Authenticate, or "".
func CurrentEmail(c *gin.Context) string {
	email, _ := c.Get(EmailKey)
	s, _ := email.(string)
	return s
}
