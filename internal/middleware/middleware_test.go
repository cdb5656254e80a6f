package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/policy"
	apperrors "github.com/vibetechlabs-developer/News-Portal-1/pkg/errors"
	"github.com/vibetechlabs-developer/News-Portal-1/pkg/logger"
)

func setupMiddlewareDB(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init("test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	database.DB = db
	assert.NoError(t, database.DB.AutoMigrate(&models.SiteSettings{}))
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler_AppErrorBecomesResponse(t *testing.T) {
	setupMiddlewareDB(t)

	r := gin.New()
	r.Use(ErrorHandlerMiddleware())
	r.GET("/denied", func(c *gin.Context) {
		c.Error(apperrors.Forbidden("not allowed"))
		c.Abort()
	})

	w := serve(r, "GET", "/denied")
	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not allowed", resp["error"])
}

func TestErrorHandler_PanicBecomes500(t *testing.T) {
	setupMiddlewareDB(t)

	r := gin.New()
	r.Use(ErrorHandlerMiddleware())
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := serve(r, "GET", "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMaintenanceMode_BlocksPublicAllowsSuperAdmin(t *testing.T) {
	setupMiddlewareDB(t)
	assert.NoError(t, database.DB.Create(&models.SiteSettings{ID: 1, SiteName: "t", MaintenanceMode: true}).Error)

	newRouter := func(id policy.Identity) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if id.Authenticated {
				c.Set(identityKey, id)
			}
			c.Next()
		}, MaintenanceMode())
		r.GET("/x", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
		return r
	}

	w := serve(newRouter(policy.Anonymous()), "GET", "/x")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	editor := policy.Identity{UserID: "e1", Role: models.RoleEditor, Authenticated: true}
	w = serve(newRouter(editor), "GET", "/x")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	admin := policy.Identity{UserID: "a1", Role: models.RoleSuperAdmin, Authenticated: true}
	w = serve(newRouter(admin), "GET", "/x")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMaintenanceMode_OffPassesThrough(t *testing.T) {
	setupMiddlewareDB(t)
	assert.NoError(t, database.DB.Create(&models.SiteSettings{ID: 1, SiteName: "t"}).Error)

	r := gin.New()
	r.Use(MaintenanceMode())
	r.GET("/x", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	w := serve(r, "GET", "/x")
	assert.Equal(t, http.StatusOK, w.Code)
}
