package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type memNotifications struct {
	items  map[uint]*Notification
	nextID uint
	down   bool
}

func newMemNotifications() *memNotifications {
	return &memNotifications{items: map[uint]*Notification{}}
}

func (m *memNotifications) Create(_ context.Context, n *Notification) error {
	m.nextID++
	n.ID = m.nextID
	cp := *n
	m.items[n.ID] = &cp
	return nil
}

func (m *memNotifications) GetByID(_ context.Context, id uint) (*Notification, error) {
	n, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (m *memNotifications) List(context.Context) ([]Notification, error) {
	if m.down {
		return nil, errors.New("connection refused")
	}
	out := []Notification{}
	for id := uint(1); id <= m.nextID; id++ {
		if n, ok := m.items[id]; ok {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (m *memNotifications) Update(_ context.Context, n *Notification) error {
	cp := *n
	m.items[n.ID] = &cp
	return nil
}

func (m *memNotifications) Delete(_ context.Context, id uint) error {
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

func setupRouter(repo NotificationRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	RegisterNotificationRoutes(api, api, NewNotificationController(repo))
	return r
}

func request(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNotificationLifecycle(t *testing.T) {
	repo := newMemNotifications()
	r := setupRouter(repo)

	if w := request(r, http.MethodPost, "/api/notifications", CreateNotificationRequest{Title: "Kick-off", Description: "Season starts"}); w.Code != http.StatusCreated {
		t.Fatalf("create: got %d, body %s", w.Code, w.Body.String())
	}
	if w := request(r, http.MethodPost, "/api/notifications", CreateNotificationRequest{Description: "no title"}); w.Code != http.StatusBadRequest {
		t.Errorf("missing title: got %d", w.Code)
	}

	empty := ""
	if w := request(r, http.MethodPut, "/api/notifications/1", UpdateNotificationRequest{Title: &empty}); w.Code != http.StatusBadRequest {
		t.Errorf("empty title: got %d", w.Code)
	}
	desc := "Moved to Sunday"
	if w := request(r, http.MethodPut, "/api/notifications/1", UpdateNotificationRequest{Description: &desc}); w.Code != http.StatusOK {
		t.Fatalf("update: got %d", w.Code)
	}
	if n := repo.items[1]; n.Title != "Kick-off" || n.Description != desc {
		t.Errorf("unexpected stored notification %+v", n)
	}
	if w := request(r, http.MethodPut, "/api/notifications/5", UpdateNotificationRequest{Description: &desc}); w.Code != http.StatusNotFound {
		t.Errorf("unknown notification: got %d", w.Code)
	}

	w := request(r, http.MethodGet, "/api/notifications", nil)
	var body struct {
		Data []Notification `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusOK || len(body.Data) != 1 {
		t.Errorf("list: got %d with %d items", w.Code, len(body.Data))
	}

	if w := request(r, http.MethodDelete, "/api/notifications/1", nil); w.Code != http.StatusOK {
		t.Errorf("delete: got %d", w.Code)
	}
	if w := request(r, http.MethodDelete, "/api/notifications/1", nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete: got %d", w.Code)
	}
	if w := request(r, http.MethodDelete, "/api/notifications/x", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad id: got %d", w.Code)
	}
}

func TestNotificationStorageFailure(t *testing.T) {
	repo := newMemNotifications()
	repo.down = true
	w := request(setupRouter(repo), http.MethodGet, "/api/notifications", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("got %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("connection refused")) {
		t.Errorf("storage detail leaked: %s", w.Body.String())
	}
}
