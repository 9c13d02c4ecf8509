// backend/controllers/authController_test.go
package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sqpaloma/novak-sub002/backend/config"
	"github.com/sqpaloma/novak-sub002/backend/initializers"
	"github.com/sqpaloma/novak-sub002/backend/middleware"
	"github.com/sqpaloma/novak-sub002/backend/models"
	"github.com/sqpaloma/novak-sub002/backend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{
		JWTSecret:  "segredo-de-teste",
		HashScheme: "legacy",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Employee{},
		&models.Supplier{},
		&models.Person{},
		&models.Department{},
		&models.Subdepartment{},
		&models.DepartmentPersonLink{},
		&models.WorkItem{},
		&models.AuditLog{},
	))
	initializers.DB = db

	r := gin.New()
	r.POST("/login", Login)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth)
	{
		api.GET("/capabilities", middleware.RouteGate, GetCapabilities)
		api.GET("/items", middleware.RequireCapability("dashboard"), GetItems)
		api.GET("/management/employees", middleware.RequireCapability("settings"), GetEmployees)
	}

	return r
}

func seedEmployee(t *testing.T, name, email, password, role string, isAdmin bool) {
	t.Helper()
	hash, err := services.LegacyHasher{}.Hash(password)
	require.NoError(t, err)
	emp := models.Employee{Name: name, Email: email, PasswordHash: hash, Role: role, IsAdmin: isAdmin}
	require.NoError(t, initializers.DB.Create(&emp).Error)
}

func doLogin(t *testing.T, r *gin.Engine, identifier, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(gin.H{"identifier": identifier, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, r *gin.Engine, identifier, password string) string {
	t.Helper()
	w := doLogin(t, r, identifier, password)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func authedGet(r *gin.Engine, token, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginReturnsPrincipalAndToken(t *testing.T) {
	r := setupTestServer(t)
	seedEmployee(t, "Giovanna", "gerente@empresa.com.br", "senha123", "consultor", false)

	w := doLogin(t, r, "gerente@empresa.com.br", "senha123")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token     string           `json:"token"`
		Principal models.Principal `json:"principal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.PrincipalEmployee, resp.Principal.Type)
	// O e-mail fixo vence o papel armazenado.
	assert.Equal(t, "gerente", resp.Principal.Role)
}

func TestLoginFailureKinds(t *testing.T) {
	r := setupTestServer(t)
	seedEmployee(t, "Lucas Santos", "lucas@empresa.com.br", "senha123", "", false)

	w := doLogin(t, r, "naoexiste@empresa.com.br", "x")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "EmailNotFound")

	w = doLogin(t, r, "lucas@empresa.com.br", "errada")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "WrongPassword")
}

func TestCapabilitiesComprasRouteGate(t *testing.T) {
	r := setupTestServer(t)
	seedEmployee(t, "Comprador", "compras@empresa.com.br", "senha", "compras", false)
	token := loginToken(t, r, "compras@empresa.com.br", "senha")

	// Prefixo permitido: responde normalmente.
	w := authedGet(r, token, "/api/capabilities?route=/settings")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"routeAllowed":true`)

	// Fora do prefixo: o guarda redireciona antes da verificação de
	// capacidades.
	w = authedGet(r, token, "/api/capabilities?route=/dashboard")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/compras", w.Header().Get("Location"))
}

func TestItemsScopedToConsultor(t *testing.T) {
	r := setupTestServer(t)
	seedEmployee(t, "Lucas Santos", "lucas@empresa.com.br", "senha", "consultor", false)

	items := []models.WorkItem{
		{Titulo: "Orçamento 1", Responsavel: "Lucas Santos Jr", Status: "pendente"},
		{Titulo: "Orçamento 2", Responsavel: "Rafael", Status: "pendente"},
	}
	require.NoError(t, initializers.DB.Create(&items).Error)

	token := loginToken(t, r, "lucas@empresa.com.br", "senha")
	w := authedGet(r, token, "/api/items")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.WorkItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Lucas Santos Jr", resp.Data[0].Responsavel)
}

func TestItemsAdminSeesEverything(t *testing.T) {
	r := setupTestServer(t)
	seedEmployee(t, "Administrador", "admin@empresa.com.br", "admin", "", true)

	for i := 0; i < 3; i++ {
		item := models.WorkItem{Titulo: fmt.Sprintf("Item %d", i), Responsavel: fmt.Sprintf("Pessoa %d", i)}
		require.NoError(t, initializers.DB.Create(&item).Error)
	}

	token := loginToken(t, r, "admin@empresa.com.br", "admin")
	w := authedGet(r, token, "/api/items")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.WorkItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 3)
}

func TestManagementRequiresSettingsCapability(t *testing.T) {
	r := setupTestServer(t)
	seedEmployee(t, "Lucas Santos", "lucas@empresa.com.br", "senha", "consultor", false)

	token := loginToken(t, r, "lucas@empresa.com.br", "senha")
	w := authedGet(r, token, "/api/management/employees")

	// Sem a capacidade, o resultado é acesso negado, não redirecionamento.
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestWithoutTokenIsRejected(t *testing.T) {
	r := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
