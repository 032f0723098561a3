package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHashAndCheckPassword(t *testing.T) {
	HashCost = 4
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "hunter22") {
		t.Error("expected password to match")
	}
	if CheckPassword(hash, "hunter23") {
		t.Error("expected mismatch")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	tok, err := GenerateRefreshToken(42, "refresh-secret", 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	id, err := VerifyRefreshToken(tok, "refresh-secret")
	if err != nil || id != 42 {
		t.Fatalf("verify: id=%d err=%v", id, err)
	}
	if _, err := VerifyRefreshToken(tok, "other"); err == nil {
		t.Error("expected wrong secret to fail")
	}
	expired, _ := GenerateRefreshToken(42, "refresh-secret", -1)
	if _, err := VerifyRefreshToken(expired, "refresh-secret"); err == nil {
		t.Error("expected expired token to fail")
	}
}

func TestPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?page=0&limit=500", nil)

	page, limit := Pagination(c)
	if page != 1 || limit != 100 {
		t.Errorf("got page=%d limit=%d", page, limit)
	}
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "12"}, {Key: "bad", Value: "x"}, {Key: "zero", Value: "0"}}

	if id, ok := ParseIDParam(c, "id"); !ok || id != 12 {
		t.Errorf("id: got %d %v", id, ok)
	}
	if _, ok := ParseIDParam(c, "bad"); ok {
		t.Error("expected bad to fail")
	}
	if _, ok := ParseIDParam(c, "zero"); ok {
		t.Error("expected zero to fail")
	}
}
