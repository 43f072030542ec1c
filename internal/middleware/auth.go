package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"

	"github.com/kingrain94/pitchcraft-api/internal/config"
	"github.com/kingrain94/pitchcraft-api/internal/utils"
)

const defaultLeeway = 30 * time.Second

type AuthMiddleware struct {
	config  *config.Config
	keyfunc jwt.Keyfunc
	parser  *jwt.Parser
}

// NewAuthMiddleware verifies HS256 tokens signed with JWT_SECRET_KEY.
func NewAuthMiddleware(config *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		config: config,
		keyfunc: func(token *jwt.Token) (any, error) {
			return []byte(config.JWTSecretKey), nil
		},
		parser: newParser(config, []string{jwt.SigningMethodHS256.Name}),
	}
}

// NewJWKSAuthMiddleware verifies identity provider tokens against the keys
// published at AUTH_JWKS_URL. The key set is refreshed in the background
// until ctx is done.
func NewJWKSAuthMiddleware(ctx context.Context, config *config.Config) (*AuthMiddleware, error) {
	if config.AuthJWKSURL == "" {
		return nil, errors.New("AUTH_JWKS_URL must be set")
	}

	keyProvider, err := keyfunc.NewDefaultCtx(ctx, []string{config.AuthJWKSURL})
	if err != nil {
		return nil, fmt.Errorf("failed to init JWKS keyfunc: %w", err)
	}

	return &AuthMiddleware{
		config:  config,
		keyfunc: keyProvider.Keyfunc,
		parser: newParser(config, []string{
			jwt.SigningMethodRS256.Name,
			jwt.SigningMethodRS384.Name,
			jwt.SigningMethodRS512.Name,
			jwt.SigningMethodES256.Name,
		}),
	}, nil
}

func newParser(config *config.Config, methods []string) *jwt.Parser {
	opts := []jwt.ParserOption{
		jwt.WithLeeway(defaultLeeway),
		jwt.WithValidMethods(methods),
		jwt.WithExpirationRequired(),
	}
	if config.AuthIssuer != "" {
		opts = append(opts, jwt.WithIssuer(config.AuthIssuer))
	}
	return jwt.NewParser(opts...)
}

// JWTAuth requires a valid bearer token and stores its subject as the owner.
// Websocket upgrades may pass the token as the access_token query parameter
// since browsers cannot set headers on them.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := m.extractToken(c)
		if !ok {
			return
		}

		claims := jwt.MapClaims{}
		parsed, err := m.parser.ParseWithClaims(token, &claims, m.keyfunc)
		if err != nil || !parsed.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		ownerID, err := claims.GetSubject()
		if err != nil || strings.TrimSpace(ownerID) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has no subject"})
			c.Abort()
			return
		}

		c.Set(string(utils.OwnerIDKey), ownerID)
		c.Set(string(utils.ClaimsKey), claims)
		c.Next()
	}
}

func (m *AuthMiddleware) extractToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if websocket.IsWebSocketUpgrade(c.Request) {
			if token := c.Query("access_token"); token != "" {
				return token, true
			}
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		c.Abort()
		return "", false
	}

	bearerToken := strings.SplitN(authHeader, " ", 2)
	if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" || strings.TrimSpace(bearerToken[1]) == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		c.Abort()
		return "", false
	}

	return strings.TrimSpace(bearerToken[1]), true
}

// GenerateToken mints an HS256 token for local development.
func (m *AuthMiddleware) GenerateToken(ownerID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": ownerID,
		"exp": time.Now().Add(time.Duration(m.config.JWTExpirationHours) * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	if m.config.AuthIssuer != "" {
		claims["iss"] = m.config.AuthIssuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.JWTSecretKey))
}
