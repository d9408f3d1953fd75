package auth

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

	"github.com/gurpreetgarry91/pbs-backend/testutils"
	"github.com/gurpreetgarry91/pbs-backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
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

func userColumns() []string {
	return []string{"user_id", "user_name", "email", "phone", "role", "password", "auth_token", "active", "created_at", "updated_at"}
}

func performLogin(handler *Handler, body map[string]string) *httptest.ResponseRecorder {
	r := testutils.SetupTestRouter()
	r.POST("/mobile/login", handler.Login)

	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/mobile/login", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	database, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, err := utils.HashPassword("Secret123")
	assert.NoError(t, err)

	now := time.Now()
	rows := mock.NewRows(userColumns()).
		AddRow(7, "alice", "alice@example.com", nil, "subscriber", hash, nil, true, now, now)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_name = `).
		WillReturnRows(rows)

	// Le token précédent est écrasé sur la ligne utilisateur
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp := performLogin(New(database), map[string]string{
		"user_name": "alice",
		"password":  "Secret123",
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "7", body["user_id"])

	claims, err := utils.DecodeToken(body["token"])
	assert.NoError(t, err)
	assert.Equal(t, "7", claims["user_id"])
	assert.Equal(t, "subscriber", claims["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	database, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, err := utils.HashPassword("Secret123")
	assert.NoError(t, err)

	now := time.Now()
	rows := mock.NewRows(userColumns()).
		AddRow(7, "alice", "alice@example.com", nil, "subscriber", hash, nil, true, now, now)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_name = `).
		WillReturnRows(rows)

	resp := performLogin(New(database), map[string]string{
		"user_name": "alice",
		"password":  "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "Invalid credentials", body["detail"])
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	database, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_name = `).
		WillReturnError(gorm.ErrRecordNotFound)

	resp := performLogin(New(database), map[string]string{
		"user_name": "nobody",
		"password":  "whatever",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// Même message que pour un mauvais mot de passe: pas d'énumération
	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "Invalid credentials", body["detail"])
}

func TestLogin_InvalidBody(t *testing.T) {
	database, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	resp := performLogin(New(database), map[string]string{
		"user_name": "alice",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
