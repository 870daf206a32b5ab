package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sis-eval/backend/internal/app/models/dto"
	"github.com/sis-eval/backend/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    dto.ErrorCode
		wantMessage string
	}{
		{"invalid id", apperrors.NewInvalidIDError("professor"), http.StatusNotAcceptable, dto.ErrorCodeInvalidID, "invalid professor id"},
		{"score out of range", apperrors.ErrScoreOutOfRange, http.StatusNotAcceptable, dto.ErrorCodeScoreOutOfRange, "scores must be between 0 and 5"},
		{"missing fields", apperrors.NewCustomError(apperrors.ErrMissingFields, "missing required fields: diseno"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "missing required fields: diseno"},
		{"missing search params", apperrors.ErrMissingSearchParams, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "search type and search term are required"},
		{"invalid search type", apperrors.ErrInvalidSearchType, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "invalid search type"},
		{"generic validation", apperrors.NewValidationError("nombre", "professor name is required"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "professor name is required"},
		{"professor not found", fmt.Errorf("lookup: %w", apperrors.ErrProfessorNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "professor not found"},
		{"evaluator not found", apperrors.ErrEvaluatorNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "evaluator not found"},
		{"store failure", errors.New("pq: connection reset by peer"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "internal server error"},
		{"database failure", fmt.Errorf("error recording evaluation: %w", &pgconn.PgError{Code: "57014", Message: "connection reset by peer"}), http.StatusInternalServerError, dto.ErrorCodeDatabaseError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/prof", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, w.Body.String(), "connection reset")
		})
	}
}

func TestRespondBindingErrorListsFields(t *testing.T) {
	RegisterJSONFieldNames()

	type payload struct {
		Name string `json:"nombre" binding:"required"`
	}

	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var p payload
		if err := c.ShouldBindJSON(&p); err != nil {
			RespondBindingError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error struct {
			Details []dto.ErrorDetail `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Error.Details, 1)
	assert.Equal(t, "nombre", body.Error.Details[0].Field)
	assert.Equal(t, "nombre is required", body.Error.Details[0].Message)
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Details[0].Code)
}

func TestRespondBindingErrorMalformedJSONHasNoDetails(t *testing.T) {
	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var p struct {
			Name string `json:"nombre"`
		}
		if err := c.ShouldBindJSON(&p); err != nil {
			RespondBindingError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"nombre":`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), `"details"`)
}

func TestCORS(t *testing.T) {
	handler, err := CORS(CORSConfig{
		AllowedOrigins:       []string{"http://localhost:3000/", "https://sis-eval.vercel.app"},
		PreviewOriginPattern: `^https://sis-eval-[a-z0-9]+-morefews-projects\.vercel\.app$`,
	})
	require.NoError(t, err)

	router := gin.New()
	router.Use(handler)
	router.GET("/api/prof", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })

	tests := []struct {
		name        string
		origin      string
		wantStatus  int
		wantAllowed bool
	}{
		{"no origin", "", http.StatusOK, false},
		{"allow-listed with trailing slash in config", "http://localhost:3000", http.StatusOK, true},
		{"allow-listed", "https://sis-eval.vercel.app", http.StatusOK, true},
		{"preview deployment", "https://sis-eval-abc123-morefews-projects.vercel.app", http.StatusOK, true},
		{"lookalike preview", "https://sis-eval-abc123-morefews-projects.vercel.app.evil.com", http.StatusForbidden, false},
		{"unknown", "https://evil.example", http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/prof", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			}
			assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestCORSRejectsBadPattern(t *testing.T) {
	_, err := CORS(CORSConfig{PreviewOriginPattern: "("})
	assert.Error(t, err)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	lgr := zerolog.New(&buf)

	router := gin.New()
	router.Use(RequestLogger(lgr))
	router.GET("/api/prof/:id", func(c *gin.Context) { c.String(http.StatusNotFound, "gone") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/prof/abc", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/prof/abc", entry["path"])
	assert.EqualValues(t, http.StatusNotFound, entry["status"])
	assert.EqualValues(t, 4, entry["size"])
	assert.Contains(t, entry, "latencyMs")
	assert.Contains(t, entry, "clientIp")
	assert.Contains(t, entry, "date")
}
