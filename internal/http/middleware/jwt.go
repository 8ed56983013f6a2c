package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/model"
)

var (
	errInvalidToken  = errors.New("invalid token")
	errInvalidClaims = errors.New("invalid claims")
)

// parseToken verifies an HS256 token issued by the account service and
// returns its subject. Numeric subjects are accepted and stringified.
func parseToken(tokenString, secret string) (*model.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	user := &model.User{}
	switch sub := claims["sub"].(type) {
	case string:
		user.ID = sub
	case float64:
		user.ID = strconv.FormatInt(int64(sub), 10)
	}
	if user.ID == "" {
		return nil, errInvalidClaims
	}
	user.Email, _ = claims["email"].(string)
	user.Role, _ = claims["role"].(string)
	return user, nil
}

// JWTMiddleware checks "Authorization: Bearer <token>", verifies it and sets
// "currentUser" in the context.
func JWTMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing auth header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid auth header"})
			return
		}

		user, err := parseToken(parts[1], secret)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("[auth] rejected token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}
