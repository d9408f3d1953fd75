package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gurpreetgarry91/pbs-backend/models"
	"github.com/gurpreetgarry91/pbs-backend/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func userColumns() []string {
	return []string{"user_id", "user_name", "email", "phone", "role", "password", "auth_token", "active", "created_at", "updated_at"}
}

func setupAuthRouter(t *testing.T, database *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := testutils.SetupTestRouter()
	r.GET("/protected", DashboardAuth(database), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		assert.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"acting_user_id": user.UserID})
	})
	return r
}

func TestDashboardAuth_MissingHeader(t *testing.T) {
	database, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := setupAuthRouter(t, database)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "Authorization header missing", body["detail"])
}

func TestDashboardAuth_UnknownToken(t *testing.T) {
	database, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE auth_token = `).
		WillReturnError(gorm.ErrRecordNotFound)

	r := setupAuthRouter(t, database)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer unknown-token")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "Invalid authentication token", body["detail"])
}

func TestDashboardAuth_SubscriberForbidden(t *testing.T) {
	database, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	token := "subscriber-token"
	now := time.Now()
	rows := mock.NewRows(userColumns()).
		AddRow(3, "bob", "bob@example.com", nil, "subscriber", "hash", token, true, now, now)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE auth_token = `).
		WillReturnRows(rows)

	r := setupAuthRouter(t, database)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "Insufficient privileges", body["detail"])
}

func TestDashboardAuth_PrivilegedPasses(t *testing.T) {
	database, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	token := "editor-token"
	now := time.Now()
	rows := mock.NewRows(userColumns()).
		AddRow(5, "alice", "alice@example.com", nil, "editor", "hash", token, true, now, now)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE auth_token = `).
		WillReturnRows(rows)

	r := setupAuthRouter(t, database)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body map[string]float64
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, float64(5), body["acting_user_id"])
}

func TestDashboardAuth_TokenWithoutBearerPrefix(t *testing.T) {
	database, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	token := "raw-token"
	now := time.Now()
	rows := mock.NewRows(userColumns()).
		AddRow(9, "root", "root@example.com", nil, string(models.SuperAdminRole), "hash", token, true, now, now)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE auth_token = `).
		WillReturnRows(rows)

	r := setupAuthRouter(t, database)

	// Le préfixe Bearer manquant est toléré
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}
