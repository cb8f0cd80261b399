package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	tokenStr, err := GenerateToken(7, "driver1", "Driver")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if tokenStr == "" {
		t.Fatalf("expected token")
	}

	token, err := ValidateToken(tokenStr)
	if err != nil || !token.Valid {
		t.Fatalf("ValidateToken: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("expected map claims, got %T", token.Claims)
	}
	if claims["id"].(float64) != 7 {
		t.Fatalf("id mismatch: %v", claims["id"])
	}
	if claims["login"] != "driver1" {
		t.Fatalf("login mismatch: %v", claims["login"])
	}
	if claims["role"] != "Driver" {
		t.Fatalf("role mismatch: %v", claims["role"])
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("GetExpirationTime: %v", err)
	}
	if exp.Before(time.Now().Add(23 * time.Hour)) {
		t.Fatalf("expected ~24h expiry, got %v", exp)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"id":    1,
		"login": "driver1",
		"role":  "Driver",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateToken(expired); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet("user_id"),
			"login":   c.MustGet("login"),
			"role":    c.MustGet("role"),
		})
	})

	// Missing header
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", w.Code)
	}

	// Garbage token
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", w.Code)
	}

	// Valid token binds identity to the context
	token, err := GenerateToken(3, "driver2", "Driver")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d: %s", w.Code, w.Body.String())
	}
}
