package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bar-pos-api/config"
	"bar-pos-api/models"
	"bar-pos-api/routes"
	"bar-pos-api/utils"
)

type testApp struct {
	router *gin.Engine
	beer   models.Product
	combo  models.Combo
	tables []models.Table
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "pos.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	app := &testApp{}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{Username: "admin", Password: string(hash), Role: models.RoleAdmin}).Error)

	app.beer = models.Product{Name: "Chang", Price: 90, Category: models.CategoryBeer, Stock: 500, MinStock: 50}
	ice := models.Product{Name: "Ice", Price: 20, Category: models.CategoryGeneral, Stock: 1000, MinStock: 200}
	require.NoError(t, db.Create(&app.beer).Error)
	require.NoError(t, db.Create(&ice).Error)

	app.combo = models.Combo{
		Name:  "3 beers + ice",
		Price: 199,
		Items: []models.ComboItem{
			{ProductID: app.beer.ID, Quantity: 3},
			{ProductID: ice.ID, Quantity: 1},
		},
	}
	require.NoError(t, db.Create(&app.combo).Error)

	for n := 1; n <= 3; n++ {
		table := models.Table{Number: n, Status: models.TableAvailable}
		require.NoError(t, db.Create(&table).Error)
		app.tables = append(app.tables, table)
	}

	app.router = gin.New()
	routes.RegisterRoutes(app.router)
	return app
}

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestLoginAndAuthGuard(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/tables/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodPost, "/auth/login", "", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodPost, "/auth/login", "", gin.H{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]interface{}](t, w)
	assert.NotEmpty(t, resp["token"])
	assert.Equal(t, "admin", resp["role"])
}

func TestStaffCannotMutateCatalog(t *testing.T) {
	app := newTestApp(t)
	staffToken, err := utils.GenerateToken(42, models.RoleStaff)
	require.NoError(t, err)

	w := app.do(t, http.MethodPost, "/products/", staffToken, gin.H{
		"name": "Leo", "price": 85, "category": "beer", "stock": 10,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(t, http.MethodGet, "/products/", staffToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTableOrderLifecycle(t *testing.T) {
	app := newTestApp(t)
	token, err := utils.GenerateToken(1, models.RoleAdmin)
	require.NoError(t, err)

	table := app.tables[1]

	// Reserve, conflicting reserve, release.
	w := app.do(t, http.MethodPost, fmt.Sprintf("/tables/%d/reserve", table.ID), token, gin.H{"reservedBy": "Somchai"})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPost, fmt.Sprintf("/tables/%d/reserve", table.ID), token, gin.H{"reservedBy": "Somsak"})
	require.Equal(t, http.StatusConflict, w.Code)
	conflict := decode[map[string]interface{}](t, w)
	assert.Equal(t, "reserved", conflict["status"])
	assert.Equal(t, "Somchai", conflict["reservedBy"])

	w = app.do(t, http.MethodPost, fmt.Sprintf("/tables/%d/release", table.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Open a tab: 2 beers + 1 combo.
	w = app.do(t, http.MethodPost, "/orders/", token, gin.H{
		"tableId": table.ID,
		"items": []gin.H{
			{"refId": app.beer.ID, "type": "product", "quantity": 2},
			{"refId": app.combo.ID, "type": "combo", "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	order := decode[models.Order](t, w)
	assert.Equal(t, 379.0, order.Total)

	// One more beer merges.
	w = app.do(t, http.MethodPut, fmt.Sprintf("/orders/%d/add-items", order.ID), token, gin.H{
		"items": []gin.H{{"refId": app.beer.ID, "type": "product", "quantity": 1}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	order = decode[models.Order](t, w)
	assert.Equal(t, 469.0, order.Total)

	// Close the tab and check the dashboard picked it up.
	w = app.do(t, http.MethodPut, fmt.Sprintf("/orders/%d/complete", order.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/tables/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	tables := decode[[]models.Table](t, w)
	for _, tb := range tables {
		if tb.ID == table.ID {
			assert.Equal(t, models.TableAvailable, tb.Status)
			assert.Nil(t, tb.OrderID)
		}
	}

	w = app.do(t, http.MethodGet, "/reports/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	dash := decode[map[string]interface{}](t, w)
	assert.Equal(t, 469.0, dash["today_revenue"])
}

func TestReportsRequireAdmin(t *testing.T) {
	app := newTestApp(t)
	staffToken, err := utils.GenerateToken(7, models.RoleStaff)
	require.NoError(t, err)

	w := app.do(t, http.MethodGet, "/reports/dashboard", staffToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
