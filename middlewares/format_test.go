package middlewares

import (
	"CareLink/utils"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
)

func recordError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	RespondError(c, err)
	return w
}

func TestRespondErrorStatusByKind(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
	}{
		{utils.ValidationError("bad input"), http.StatusBadRequest},
		{utils.IntegrityError("duplicate", nil), http.StatusBadRequest},
		{utils.PermissionError("not yours"), http.StatusForbidden},
		{utils.NotFoundError("missing"), http.StatusNotFound},
		{utils.AuthenticationError("expired"), http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		w := recordError(t, c.err)
		if w.Code != c.wantStatus {
			t.Errorf("%v: status = %d, want %d", c.err, w.Code, c.wantStatus)
		}
	}
}

func TestRespondErrorCarriesValidationDetails(t *testing.T) {
	details := validation.Errors{"email": errors.New("must be a valid email address")}
	w := recordError(t, utils.ValidationDetails("Patient validation failed", details))

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Error != "Patient validation failed" {
		t.Errorf("error = %q", body.Error)
	}
	if !strings.Contains(body.Details["email"], "valid email") {
		t.Errorf("details = %v", body.Details)
	}
}

func TestRespondErrorHidesKindForUnexpected(t *testing.T) {
	w := recordError(t, errors.New("pq: connection refused"))

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "Internal server error" {
		t.Errorf("error = %v", body["error"])
	}
}
