package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/league/config"
	"github.com/DhavalSuthar-24/league/internal/middleware"
	"github.com/DhavalSuthar-24/league/internal/user"
)

type memUsers struct {
	users  map[uint]*user.User
	nextID uint
}

func newMemUsers() *memUsers { return &memUsers{users: map[uint]*user.User{}} }

func (m *memUsers) CreateUser(_ context.Context, u *user.User) error {
	m.nextID++
	u.ID = m.nextID
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUsers) GetUserByID(_ context.Context, id uint) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetUserByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) UserExists(_ context.Context, id uint) (bool, error) {
	_, ok := m.users[id]
	return ok, nil
}

var testJWT = config.JWTConfig{
	AccessTokenSecret:        "access-secret",
	AccessTokenExpiryMinutes: 5,
	RefreshTokenSecret:       "refresh-secret",
	RefreshTokenExpiryDays:   1,
}

func setupRouter(users user.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(testJWT.AccessTokenSecret, users))
	RegisterAuthRoutes(api, protected, users, testJWT)
	return r
}

func request(r *gin.Engine, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeTokens(t *testing.T, w *httptest.ResponseRecorder) AuthResponse {
	t.Helper()
	var body struct {
		Data AuthResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Data.AccessToken == "" || body.Data.RefreshToken == "" {
		t.Fatalf("missing tokens in %s", w.Body.String())
	}
	return body.Data
}

func TestRegister(t *testing.T) {
	users := newMemUsers()
	r := setupRouter(users)

	w := request(r, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Username: "referee", Password: "password123", RepeatPassword: "password124",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("mismatched passwords: got %d", w.Code)
	}
	if len(users.users) != 0 {
		t.Fatal("user stored despite mismatched passwords")
	}

	ok := RegisterRequest{Username: "referee", Password: "password123", RepeatPassword: "password123"}
	w = request(r, http.MethodPost, "/api/auth/register", "", ok)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: got %d, body %s", w.Code, w.Body.String())
	}
	tokens := decodeTokens(t, w)
	if tokens.User.Username != "referee" {
		t.Errorf("unexpected user %+v", tokens.User)
	}
	if stored := users.users[1]; stored.Password == "password123" {
		t.Error("password stored in clear text")
	}
	if bytes.Contains(w.Body.Bytes(), []byte(users.users[1].Password)) {
		t.Error("password hash leaked in response")
	}

	if w := request(r, http.MethodPost, "/api/auth/register", "", ok); w.Code != http.StatusConflict {
		t.Errorf("duplicate username: got %d", w.Code)
	}
	if w := request(r, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Username: "ab", Password: "password123", RepeatPassword: "password123",
	}); w.Code != http.StatusBadRequest {
		t.Errorf("short username: got %d", w.Code)
	}
}

func TestLoginRefreshMe(t *testing.T) {
	users := newMemUsers()
	r := setupRouter(users)
	reg := request(r, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Username: "referee", Password: "password123", RepeatPassword: "password123",
	})
	if reg.Code != http.StatusCreated {
		t.Fatalf("register: got %d", reg.Code)
	}

	if w := request(r, http.MethodPost, "/api/auth/login", "", LoginRequest{Username: "referee", Password: "wrong-password"}); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: got %d", w.Code)
	}
	if w := request(r, http.MethodPost, "/api/auth/login", "", LoginRequest{Username: "nobody", Password: "password123"}); w.Code != http.StatusUnauthorized {
		t.Errorf("unknown user: got %d", w.Code)
	}

	w := request(r, http.MethodPost, "/api/auth/login", "", LoginRequest{Username: "referee", Password: "password123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: got %d, body %s", w.Code, w.Body.String())
	}
	login := decodeTokens(t, w)

	if w := request(r, http.MethodPost, "/api/auth/refresh", "", RefreshTokenRequest{RefreshToken: login.AccessToken}); w.Code != http.StatusUnauthorized {
		t.Errorf("access token accepted as refresh token: got %d", w.Code)
	}
	w = request(r, http.MethodPost, "/api/auth/refresh", "", RefreshTokenRequest{RefreshToken: login.RefreshToken})
	if w.Code != http.StatusOK {
		t.Fatalf("refresh: got %d, body %s", w.Code, w.Body.String())
	}
	refreshed := decodeTokens(t, w)

	w = request(r, http.MethodGet, "/api/auth/me", refreshed.AccessToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: got %d, body %s", w.Code, w.Body.String())
	}
	var me struct {
		Data UserResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &me); err != nil {
		t.Fatal(err)
	}
	if me.Data.ID != 1 || me.Data.Username != "referee" {
		t.Errorf("unexpected me %+v", me.Data)
	}

	if w := request(r, http.MethodGet, "/api/auth/me", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("me without token: got %d", w.Code)
	}
	if w := request(r, http.MethodGet, "/api/auth/me", login.RefreshToken, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("me with refresh token: got %d", w.Code)
	}

	delete(users.users, 1)
	if w := request(r, http.MethodPost, "/api/auth/refresh", "", RefreshTokenRequest{RefreshToken: login.RefreshToken}); w.Code != http.StatusUnauthorized {
		t.Errorf("refresh for removed user: got %d", w.Code)
	}
}
