package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/herbtrace/internal/config"
	"github.com/linskybing/herbtrace/pkg/types"
	"github.com/linskybing/herbtrace/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKey(t *testing.T) {
	old := config.JwtSecret
	config.JwtSecret = "unit-test-secret"
	Init()
	t.Cleanup(func() {
		config.JwtSecret = old
		Init()
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	setupKey(t)

	token, err := GenerateToken(7, "555", "Asha", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.FarmerID)
	assert.Equal(t, "555", claims.Phone)
	assert.Equal(t, "Asha", claims.Name)
}

func TestParseToken_Expired(t *testing.T) {
	setupKey(t)

	token, err := GenerateToken(7, "555", "Asha", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_WrongKey(t *testing.T) {
	setupKey(t)

	claims := &types.Claims{FarmerID: 1, RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-key"))
	require.NoError(t, err)

	_, err = ParseToken(forged)
	assert.Error(t, err)
}

func newGatedRouter(gate gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/page", gate, func(c *gin.Context) {
		id, err := utils.GetFarmerIDFromContext(c)
		if err != nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.JSON(http.StatusOK, gin.H{"farmer_id": id})
	})
	return r
}

func TestRequireFarmer(t *testing.T) {
	setupKey(t)
	r := newGatedRouter(RequireFarmer())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))

	token, err := GenerateToken(3, "555", "Asha", time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"farmer_id":3}`, w.Body.String())
}

func TestOptionalFarmer(t *testing.T) {
	setupKey(t)
	r := newGatedRouter(OptionalFarmer())

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "not-a-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/api/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
