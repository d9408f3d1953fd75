package usersubscriptions

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gurpreetgarry91/pbs-backend/middleware"
	"github.com/gurpreetgarry91/pbs-backend/models"
	"github.com/gurpreetgarry91/pbs-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func userSubscriptionColumns() []string {
	return []string{"id", "user_id", "subscription_id", "start_datetime", "end_date", "payment_method", "is_deleted", "subscription_status", "added_by", "created_at", "updated_at"}
}

// asPrincipal simule le passage par DashboardAuth
func asPrincipal(user models.User, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CurrentUserKey, user)
		handler(c)
	}
}

func TestGetAllUserSubscriptions_IncludesSoftDeleted(t *testing.T) {
	database, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	rows := mock.NewRows(userSubscriptionColumns()).
		AddRow(1, 7, 2, now, now.AddDate(0, 1, 0), "card", false, "Active", 1, now, now).
		AddRow(2, 8, 2, now, now.AddDate(0, 1, 0), "cash", true, "Active", 1, now, now)

	// Comportement historique: pas de filtre is_deleted par défaut
	mock.ExpectQuery(`SELECT \* FROM "user_subscriptions"`).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	handler := New(database)
	r.GET("/dashboard/user-subscriptions", handler.GetAllUserSubscriptions)

	req, _ := http.NewRequest(http.MethodGet, "/dashboard/user-subscriptions", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string][]models.UserSubscription
	json.Unmarshal(resp.Body.Bytes(), &response)

	subs := response["user_subscriptions"]
	assert.Len(t, subs, 2)
	assert.False(t, subs[0].IsDeleted)
	assert.True(t, subs[1].IsDeleted)
}

func TestGetAllUserSubscriptions_ExcludeDeleted(t *testing.T) {
	database, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	rows := mock.NewRows(userSubscriptionColumns()).
		AddRow(1, 7, 2, now, now.AddDate(0, 1, 0), "card", false, "Active", 1, now, now)

	mock.ExpectQuery(`SELECT \* FROM "user_subscriptions" WHERE is_deleted = `).
		WithArgs(false).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	handler := New(database)
	r.GET("/dashboard/user-subscriptions", handler.GetAllUserSubscriptions)

	req, _ := http.NewRequest(http.MethodGet, "/dashboard/user-subscriptions?exclude_deleted=true", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string][]models.UserSubscription
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Len(t, response["user_subscriptions"], 1)
}

func TestGetAllUserSubscriptions_PaymentMethodFilter(t *testing.T) {
	database, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	rows := mock.NewRows(userSubscriptionColumns()).
		AddRow(1, 7, 2, now, now.AddDate(0, 1, 0), "card", false, "Active", 1, now, now)

	mock.ExpectQuery(`SELECT \* FROM "user_subscriptions" WHERE payment_method ILIKE `).
		WithArgs("%car%").
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	handler := New(database)
	r.GET("/dashboard/user-subscriptions", handler.GetAllUserSubscriptions)

	req, _ := http.NewRequest(http.MethodGet, "/dashboard/user-subscriptions?q=car", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestCreateUserSubscription_StampsActingPrincipal(t *testing.T) {
	database, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "user_subscriptions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	principal := models.User{UserID: 42, Role: models.SuperAdminRole}

	r := testutils.SetupTestRouter()
	handler := New(database)
	r.POST("/dashboard/user-subscriptions", asPrincipal(principal, handler.CreateUserSubscription))

	body, _ := json.Marshal(map[string]interface{}{
		"user_id":         7,
		"subscription_id": 2,
		"start_datetime":  "2024-03-01T00:00:00Z",
		"end_date":        "2024-04-01T00:00:00Z",
		"payment_method":  "card",
	})
	req, _ := http.NewRequest(http.MethodPost, "/dashboard/user-subscriptions", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var response map[string]models.UserSubscription
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, uint(5), response["user_subscription"].ID)
	assert.Equal(t, uint(42), response["user_subscription"].AddedBy)
	// Statut par défaut quand il n'est pas fourni
	assert.Equal(t, "Active", response["user_subscription"].SubscriptionStatus)
}

func TestCreateUserSubscription_NoPrincipal(t *testing.T) {
	database, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	handler := New(database)
	r.POST("/dashboard/user-subscriptions", handler.CreateUserSubscription)

	body, _ := json.Marshal(map[string]interface{}{
		"user_id":         7,
		"subscription_id": 2,
		"start_datetime":  "2024-03-01T00:00:00Z",
		"end_date":        "2024-04-01T00:00:00Z",
		"payment_method":  "card",
	})
	req, _ := http.NewRequest(http.MethodPost, "/dashboard/user-subscriptions", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestUpdateUserSubscription_FlipIsDeleted(t *testing.T) {
	database, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	rows := mock.NewRows(userSubscriptionColumns()).
		AddRow(5, 7, 2, now, now.AddDate(0, 1, 0), "card", true, "Active", 1, now, now)

	mock.ExpectQuery(`SELECT \* FROM "user_subscriptions" WHERE id = `).
		WillReturnRows(rows)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "user_subscriptions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	handler := New(database)
	r.PUT("/dashboard/user-subscriptions/:id", handler.UpdateUserSubscription)

	// is_deleted se manipule par la même route que les autres champs
	body, _ := json.Marshal(map[string]interface{}{"is_deleted": false})
	req, _ := http.NewRequest(http.MethodPut, "/dashboard/user-subscriptions/5", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]models.UserSubscription
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.False(t, response["user_subscription"].IsDeleted)
}

func TestDeleteUserSubscription_SoftDelete(t *testing.T) {
	database, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	rows := mock.NewRows(userSubscriptionColumns()).
		AddRow(5, 7, 2, now, now.AddDate(0, 1, 0), "card", false, "Active", 1, now, now)

	mock.ExpectQuery(`SELECT \* FROM "user_subscriptions" WHERE id = `).
		WillReturnRows(rows)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "user_subscriptions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	handler := New(database)
	r.DELETE("/dashboard/user-subscriptions/:id", handler.DeleteUserSubscription)

	req, _ := http.NewRequest(http.MethodDelete, "/dashboard/user-subscriptions/5", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "User subscription marked deleted", body["detail"])
}

func TestGetUserSubscriptionByID_StillRetrievableAfterSoftDelete(t *testing.T) {
	database, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	rows := mock.NewRows(userSubscriptionColumns()).
		AddRow(5, 7, 2, now, now.AddDate(0, 1, 0), "card", true, "Active", 1, now, now)

	mock.ExpectQuery(`SELECT \* FROM "user_subscriptions" WHERE id = `).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	handler := New(database)
	r.GET("/dashboard/user-subscriptions/:id", handler.GetUserSubscriptionByID)

	req, _ := http.NewRequest(http.MethodGet, "/dashboard/user-subscriptions/5", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]models.UserSubscription
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.True(t, response["user_subscription"].IsDeleted)
}

func TestGetUserSubscriptionByID_NotFound(t *testing.T) {
	database, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "user_subscriptions" WHERE id = `).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	handler := New(database)
	r.GET("/dashboard/user-subscriptions/:id", handler.GetUserSubscriptionByID)

	req, _ := http.NewRequest(http.MethodGet, "/dashboard/user-subscriptions/999", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
