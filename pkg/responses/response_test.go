package responses

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSendErrorStatusText(t *testing.T) {
	c, w := newContext()
	SendError(c, http.StatusServiceUnavailable, "down")

	var body ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "fail" || body.Code != http.StatusServiceUnavailable {
		t.Errorf("unexpected body %+v", body)
	}
	if !c.IsAborted() {
		t.Error("expected context to be aborted")
	}
}

func TestSendPaginated(t *testing.T) {
	c, w := newContext()
	SendPaginated(c, http.StatusOK, "", []int{1, 2}, 25, 2, 10)

	var body PaginatedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := body.Pagination
	if p.TotalPages != 3 || !p.HasNextPage || !p.HasPrevPage {
		t.Errorf("unexpected pagination %+v", p)
	}
	if body.Message != "Data retrieved successfully" {
		t.Errorf("unexpected default message %q", body.Message)
	}
}

func TestSendValidationErrorCarriesFields(t *testing.T) {
	c, w := newContext()
	SendValidationError(c, "Invalid request payload", map[string]string{"Gender": "bad"})

	var body ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.Code != http.StatusBadRequest || body.Fields["Gender"] != "bad" {
		t.Errorf("unexpected response %d %+v", w.Code, body)
	}
}
