package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
)

func newAdminAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}))

	r := gin.New()
	r.POST("/auth/admin/register", RegisterAdmin(db))
	r.POST("/auth/admin/login", LoginAdmin(db))
	return r, db
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAdminStartsUnapproved(t *testing.T) {
	r, db := newAdminAuthRouter(t)

	w := postJSON(r, "/auth/admin/register", `{"email":"ops@example.com","password":"secret1","name":"Ops"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var admin models.Admin
	require.NoError(t, db.Where("email = ?", "ops@example.com").First(&admin).Error)
	assert.False(t, admin.Approved)
	assert.NotEmpty(t, admin.PasswordHash)
	assert.Equal(t, "Ops", admin.Name)
}

func TestRegisterAdminRejectsDuplicateEmail(t *testing.T) {
	r, _ := newAdminAuthRouter(t)

	w := postJSON(r, "/auth/admin/register", `{"email":"ops@example.com","password":"secret1","name":"Ops"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/auth/admin/register", `{"email":"ops@example.com","password":"other12","name":"Imposter"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminLoginRequiresApproval(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, db := newAdminAuthRouter(t)

	postJSON(r, "/auth/admin/register", `{"email":"ops@example.com","password":"secret1","name":"Ops"}`)

	// Pending accounts cannot log in
	w := postJSON(r, "/auth/admin/login", `{"email":"ops@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	require.NoError(t, db.Model(&models.Admin{}).
		Where("email = ?", "ops@example.com").
		Update("approved", true).Error)

	w = postJSON(r, "/auth/admin/login", `{"email":"ops@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])
}

func TestAdminLoginRejectsBadPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, db := newAdminAuthRouter(t)

	postJSON(r, "/auth/admin/register", `{"email":"ops@example.com","password":"secret1","name":"Ops"}`)
	require.NoError(t, db.Model(&models.Admin{}).
		Where("email = ?", "ops@example.com").
		Update("approved", true).Error)

	w := postJSON(r, "/auth/admin/login", `{"email":"ops@example.com","password":"wrongpass"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
