package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rdSoftInc/DevConnect/internal/config"
	"github.com/rdSoftInc/DevConnect/internal/testutil"

	"github.com/gin-gonic/gin"
)

type apiError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type client struct {
	t      *testing.T
	router *gin.Engine
}

func newClient(t *testing.T, mutate func(cfg *config.Config)) *client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testutil.Config()
	if mutate != nil {
		mutate(cfg)
	}
	router, err := SetupRouter(cfg, testutil.NewDB(t))
	if err != nil {
		t.Fatalf("SetupRouter: %v", err)
	}
	return &client{t: t, router: router}
}

// do sends a JSON request and decodes the response into out when out is non-nil.
func (c *client) do(method, path, token string, body interface{}, out interface{}) int {
	c.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			c.t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			c.t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code
}

// errors sends a request expected to fail and returns its status and messages.
func (c *client) errors(method, path, token string, body interface{}) (int, []apiError) {
	c.t.Helper()
	var resp struct {
		Errors []apiError `json:"errors"`
	}
	status := c.do(method, path, token, body, &resp)
	return status, resp.Errors
}

func (c *client) register(name, email string) string {
	c.t.Helper()
	var resp struct {
		Token string `json:"token"`
	}
	status := c.do(http.MethodPost, "/api/users", "", gin.H{"name": name, "email": email, "password": "secret123"}, &resp)
	if status != http.StatusOK || resp.Token == "" {
		c.t.Fatalf("register %s: status %d", email, status)
	}
	return resp.Token
}

func (c *client) me(token string) string {
	c.t.Helper()
	var user struct {
		ID string `json:"_id"`
	}
	if status := c.do(http.MethodGet, "/api/auth", token, nil, &user); status != http.StatusOK {
		c.t.Fatalf("GET /api/auth: status %d", status)
	}
	return user.ID
}

func expectError(t *testing.T, status int, errs []apiError, wantStatus int, wantMsg string) {
	t.Helper()
	if status != wantStatus {
		t.Fatalf("status = %d, want %d (%+v)", status, wantStatus, errs)
	}
	if len(errs) != 1 || errs[0].Msg != wantMsg {
		t.Fatalf("errors = %+v, want [%q]", errs, wantMsg)
	}
}
