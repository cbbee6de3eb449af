package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trektribe/backend/internal/models"
	"github.com/trektribe/backend/pkg/auth"
)

// CookieName is the cookie the signed token travels in.
const CookieName = "jwtoken"

const (
	UserKey      = "user"
	UserIDKey    = "userID"
	UserEmailKey = "userEmail"
	UserNameKey  = "userName"
	TokenKey     = "token"
)

// TokenResolver resolves a verified token subject to a user record that
// still lists the literal token string.
type TokenResolver interface {
	FindUserByIDAndToken(ctx context.Context, id primitive.ObjectID, token string) (*models.User, error)
}

// Blacklist answers whether a token has been revoked by logout.
type Blacklist interface {
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}

// RedisBlacklist keeps revoked tokens in Redis until their natural expiry.
type RedisBlacklist struct {
	rdb *redis.Client
}

func NewRedisBlacklist(rdb *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{rdb: rdb}
}

func (b *RedisBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.rdb.Set(ctx, "blacklist:"+token, 1, ttl).Err()
}

func (b *RedisBlacklist) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := b.rdb.Exists(ctx, "blacklist:"+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AuthMiddleware guards protected routes. It reads the jwtoken cookie,
// rejects blacklisted tokens, verifies the signature and expiry, and then
// requires the token to still be on the user's issued-token list before
// attaching the caller's identity to the request context.
func AuthMiddleware(jwtManager *auth.JWTManager, users TokenResolver, blacklist Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.String(http.StatusUnauthorized, "noTokenFound")
			c.Abort()
			return
		}

		if blacklist != nil {
			revoked, err := blacklist.IsBlacklisted(c.Request.Context(), token)
			if err != nil || revoked {
				c.String(http.StatusUnauthorized, "Unauthorized: no token provided")
				c.Abort()
				return
			}
		}

		claims, err := jwtManager.Verify(token)
		if err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized: no token provided")
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.Subject)
		if err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized: no token provided")
			c.Abort()
			return
		}

		user, err := users.FindUserByIDAndToken(c.Request.Context(), userID, token)
		if err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized: no token provided")
			c.Abort()
			return
		}

		c.Set(UserKey, user)
		c.Set(UserIDKey, user.ID)
		c.Set(UserEmailKey, user.Email)
		c.Set(UserNameKey, user.Name)
		c.Set(TokenKey, token)
		c.Next()
	}
}

// CORS mirrors the permissive credentialed policy the frontend relies on.
func CORS(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestOrigin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
		} else if requestOrigin != "" {
			c.Header("Access-Control-Allow-Origin", requestOrigin)
		}
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
