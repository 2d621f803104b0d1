package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/herbtrace/internal/config"
	"github.com/linskybing/herbtrace/pkg/types"
	"github.com/linskybing/herbtrace/pkg/utils"
)

const (
	TokenCookie = "token"
	LoginPath   = "/login_farmer"
)

var jwtKey []byte

// Init sets the JWT signing key.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// GenerateToken issues a signed farmer session token.
var GenerateToken = func(farmerID uint, phone, name string, expireDuration time.Duration) (string, error) {
	claims := &types.Claims{
		FarmerID: farmerID,
		Phone:    phone,
		Name:     name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	// Explicitly enforce expiration to avoid lax parser behavior
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, errors.New("token expired")
	}
	return claims, nil
}

func claimsFromCookie(c *gin.Context) (*types.Claims, error) {
	tokenStr, err := c.Cookie(TokenCookie)
	if err != nil || tokenStr == "" {
		return nil, utils.ErrNoSession
	}
	return ParseToken(tokenStr)
}

// RequireFarmer gates farmer pages. Browsers without a valid session are sent
// to the login page instead of getting a 401.
func RequireFarmer() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromCookie(c)
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set(utils.ClaimsKey, claims)
		c.Next()
	}
}

// OptionalFarmer exposes the session to public pages when one exists.
func OptionalFarmer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := claimsFromCookie(c); err == nil {
			c.Set(utils.ClaimsKey, claims)
		}
		c.Next()
	}
}
