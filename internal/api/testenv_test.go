package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sociable/social-api/internal/middleware"
	"github.com/sociable/social-api/internal/models"
	"github.com/sociable/social-api/internal/service"
	"github.com/sociable/social-api/internal/testdb"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

// newTestEnv wires the handlers onto a fresh engine backed by a temp
// database, mirroring the route layout of the real router.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.Open(t)
	authService := service.NewAuthService(db, "test-secret")
	profileService := service.NewProfileService(db)
	followService := service.NewFollowService(db)

	engine := gin.New()
	v1 := engine.Group("/api/v1")

	NewAuthHandler(authService).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	NewProfileHandler(profileService, followService, nil).RegisterRoutes(protected)
	NewSearchHandler(profileService, followService, nil).RegisterRoutes(protected)

	return &testEnv{router: engine, db: db}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// register creates an account through the API and returns the new user id.
func (e *testEnv) register(t *testing.T, email, username, first, last string) uint {
	t.Helper()

	w := e.request(t, http.MethodPost, "/api/v1/register", "", gin.H{
		"email":      email,
		"username":   username,
		"password":   "pass123",
		"first_name": first,
		"last_name":  last,
		"gender":     "Female",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

// login obtains an access token through the API.
func (e *testEnv) login(t *testing.T, email string) string {
	t.Helper()

	w := e.request(t, http.MethodPost, "/api/v1/token", "", gin.H{
		"email":    email,
		"password": "pass123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var pair struct {
		Access string `json:"access"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))
	return pair.Access
}

// profileID returns the profile id for a user id, as a path segment.
func (e *testEnv) profileID(t *testing.T, userID uint) string {
	t.Helper()

	var profile models.Profile
	require.NoError(t, e.db.Where("user_id = ?", userID).First(&profile).Error)
	return strconv.FormatUint(uint64(profile.ID), 10)
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
