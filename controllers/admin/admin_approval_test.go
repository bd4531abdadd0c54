package adminController

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

	"github.com/Al-Noorstore/crush-shop-cart-flow/auth"
	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
)

func newApprovalRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}))

	r := gin.New()
	r.POST("/auth/admin/register", auth.RegisterAdmin(db))
	r.GET("/pending", ListPendingAdmins(db))
	r.POST("/approve", ApproveAdmin(db))
	r.POST("/reject", RejectAdmin(db))
	return r, db
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

// Registration must feed the approval queue: a fresh signup shows up in the
// pending list and disappears once approved.
func TestRegistrationFeedsApprovalQueue(t *testing.T) {
	r, db := newApprovalRouter(t)

	w := doJSON(r, http.MethodPost, "/auth/admin/register", `{"email":"ops@example.com","password":"secret1","name":"Ops"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/pending", "")
	require.Equal(t, http.StatusOK, w.Code)
	var pending []models.Admin
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, "ops@example.com", pending[0].Email)
	assert.False(t, pending[0].Approved)

	w = doJSON(r, http.MethodPost, "/approve", `{"email":"ops@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/pending", "")
	require.Equal(t, http.StatusOK, w.Code)
	pending = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	assert.Empty(t, pending)

	var admin models.Admin
	require.NoError(t, db.Where("email = ?", "ops@example.com").First(&admin).Error)
	assert.True(t, admin.Approved)
}

func TestRejectRemovesPendingAdmin(t *testing.T) {
	r, db := newApprovalRouter(t)

	w := doJSON(r, http.MethodPost, "/auth/admin/register", `{"email":"ops@example.com","password":"secret1","name":"Ops"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/reject", `{"email":"ops@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&count).Error)
	assert.Zero(t, count)
}
