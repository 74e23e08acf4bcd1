package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, string(publicPEM)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	key, publicPEM := generateKeyPair(t)
	otherKey, _ := generateKeyPair(t)
	cfg := AuthConfig{Enabled: true, JWTPublicKey: publicPEM, APIKeys: []string{"secret-key"}}

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	foreign := signToken(t, otherKey, jwt.RegisteredClaims{Subject: "user-1"})

	tests := []struct {
		name        string
		header      string
		wantSuccess bool
		wantType    string
		wantSubject string
	}{
		{name: "valid jwt", header: "Bearer " + valid, wantSuccess: true, wantType: AUTH_TYPE_JWT, wantSubject: "user-1"},
		{name: "expired jwt", header: "Bearer " + expired},
		{name: "jwt signed by another key", header: "Bearer " + foreign},
		{name: "valid api key", header: "ApiKey secret-key", wantSuccess: true, wantType: AUTH_TYPE_APIKEY},
		{name: "invalid api key", header: "ApiKey wrong"},
		{name: "missing header", header: ""},
		{name: "malformed header", header: "Bearer"},
		{name: "unsupported scheme", header: "Basic abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Authenticate(tt.header, cfg)
			assert.Equal(t, tt.wantSuccess, result.Success)
			if !tt.wantSuccess {
				assert.Error(t, result.Error)
				return
			}
			assert.Equal(t, tt.wantType, result.AuthType)
			assert.Equal(t, tt.wantSubject, result.AuthSubject)
		})
	}
}

func TestAuthenticate_NoKeysConfigured(t *testing.T) {
	result := Authenticate("ApiKey anything", AuthConfig{Enabled: true})
	assert.False(t, result.Success)

	result = Authenticate("Bearer token", AuthConfig{Enabled: true})
	assert.False(t, result.Success)
}

func newAuthRouter(cfg AuthConfig, actingUserID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/act", Auth(cfg), func(c *gin.Context) {
		if !ActingUserAllowed(c, actingUserID) {
			c.Status(http.StatusForbidden)
			return
		}
		c.Status(http.StatusOK)
	})
	return router
}

func TestAuth_Middleware(t *testing.T) {
	key, publicPEM := generateKeyPair(t)
	cfg := AuthConfig{Enabled: true, JWTPublicKey: publicPEM, APIKeys: []string{"secret-key"}}
	token := signToken(t, key, jwt.RegisteredClaims{Subject: "user-1"})

	tests := []struct {
		name         string
		cfg          AuthConfig
		header       string
		actingUserID string
		wantStatus   int
	}{
		{name: "disabled lets everything through", cfg: AuthConfig{}, actingUserID: "user-2", wantStatus: http.StatusOK},
		{name: "missing credentials", cfg: cfg, actingUserID: "user-1", wantStatus: http.StatusUnauthorized},
		{name: "jwt acting as itself", cfg: cfg, header: "Bearer " + token, actingUserID: "user-1", wantStatus: http.StatusOK},
		{name: "jwt acting as someone else", cfg: cfg, header: "Bearer " + token, actingUserID: "user-2", wantStatus: http.StatusForbidden},
		{name: "api key acts as anyone", cfg: cfg, header: "ApiKey secret-key", actingUserID: "user-2", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(tt.cfg, tt.actingUserID)

			req := httptest.NewRequest(http.MethodPost, "/act", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestParseRSAPublicKey_PKCS1(t *testing.T) {
	key, _ := generateKeyPair(t)
	publicPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PUBLIC KEY",
		Bytes: x509.MarshalPKCS1PublicKey(&key.PublicKey),
	})

	parsed, err := parseRSAPublicKey(string(publicPEM))
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey.N, parsed.N)

	_, err = parseRSAPublicKey("not a pem")
	assert.Error(t, err)
}
