package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewResponse(t *testing.T) {
	t.Run("2xx codes are successful", func(t *testing.T) {
		resp := NewResponse(http.StatusOK, "payload", "done")
		if !resp.Success {
			t.Error("expected success true")
		}
	})

	t.Run("4xx codes are not", func(t *testing.T) {
		resp := NewResponse(http.StatusBadRequest, nil, "nope")
		if resp.Success {
			t.Error("expected success false")
		}
	})
}

func TestErrorEnvelope(t *testing.T) {
	t.Run("renders an attached api error", func(t *testing.T) {
		router := gin.New()
		router.Use(ErrorEnvelope())
		router.GET("/boom", func(c *gin.Context) {
			c.Error(NewError(http.StatusBadRequest, "No comments found"))
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var body struct {
			StatusCode int      `json:"statusCode"`
			Message    string   `json:"message"`
			Errors     []string `json:"errors"`
			Success    bool     `json:"success"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body.StatusCode != 400 || body.Message != "No comments found" || body.Success {
			t.Errorf("unexpected body %+v", body)
		}
		if body.Errors == nil || len(body.Errors) != 0 {
			t.Errorf("errors must serialize as an empty array, got %v", body.Errors)
		}
	})

	t.Run("plain errors become a 500", func(t *testing.T) {
		router := gin.New()
		router.Use(ErrorEnvelope())
		router.GET("/boom", func(c *gin.Context) {
			c.Error(errors.New("database exploded"))
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
	})

	t.Run("stack is present outside release mode", func(t *testing.T) {
		router := gin.New()
		router.Use(ErrorEnvelope())
		router.GET("/boom", func(c *gin.Context) {
			c.Error(NewError(http.StatusBadRequest, "bad"))
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		router.ServeHTTP(w, req)

		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if stack, ok := body["stack"].(string); !ok || stack == "" {
			t.Error("expected a stack in test mode")
		}
	})

	t.Run("successful handlers pass through untouched", func(t *testing.T) {
		router := gin.New()
		router.Use(ErrorEnvelope())
		router.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, NewResponse(http.StatusOK, nil, "fine"))
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})
}

func TestHealthcheck(t *testing.T) {
	router := gin.New()
	router.GET("/healthcheck", Healthcheck)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Data struct {
			Message string `json:"message"`
			Status  int    `json:"status"`
		} `json:"data"`
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Data.Message != "ok" || body.Data.Status != 200 || !body.Success {
		t.Errorf("unexpected body %+v", body)
	}
}
