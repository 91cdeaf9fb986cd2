package menu

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMenuTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(svc)
	admin := NewAdminHandler(svc)

	r.GET("/menu", handler.List)
	r.PUT("/admin/menu/:name", admin.Upsert)
	r.DELETE("/admin/menu/:name", admin.Delete)
	r.POST("/admin/menu/reload", admin.Reload)
	r.POST("/admin/menu/import", admin.Import)
	r.POST("/admin/menu/export", admin.Export)

	return r
}

func TestMenuList(t *testing.T) {
	svc, _ := newTestService(nil)
	router := setupMenuTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menu", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []Item `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 4)
	assert.Equal(t, "Beef Taco", resp.Items[0].Name)
}

func TestAdminUpsert(t *testing.T) {
	cases := map[string]struct {
		path     string
		body     string
		wantCode int
	}{
		"Created":       {"/admin/menu/Fish%20Taco", `{"unitPrice": 4.5}`, http.StatusOK},
		"MissingPrice":  {"/admin/menu/Fish%20Taco", `{}`, http.StatusBadRequest},
		"NegativePrice": {"/admin/menu/Fish%20Taco", `{"unitPrice": -2}`, http.StatusBadRequest},
		"SubCentPrice":  {"/admin/menu/Fish%20Taco", `{"unitPrice": 3.555}`, http.StatusBadRequest},
		"HugePrice":     {"/admin/menu/Fish%20Taco", `{"unitPrice": 1e308}`, http.StatusBadRequest},
		"MalformedBody": {"/admin/menu/Fish%20Taco", `{"unitPrice":`, http.StatusBadRequest},
		"BlankName":     {"/admin/menu/%20", `{"unitPrice": 1}`, http.StatusBadRequest},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestService(nil)
			router := setupMenuTestRouter(svc)

			req := httptest.NewRequest(http.MethodPut, tc.path, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestAdminUpsert_VisibleInMenu(t *testing.T) {
	svc, _ := newTestService(nil)
	router := setupMenuTestRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/admin/menu/Fish%20Taco", bytes.NewBufferString(`{"unitPrice": 4.5}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menu", nil))
	assert.Contains(t, w.Body.String(), `{"name":"Fish Taco","unitPrice":4.5}`)
}

func TestAdminDelete(t *testing.T) {
	svc, _ := newTestService(nil)
	router := setupMenuTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/menu/Beef%20Taco", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/menu/Beef%20Taco", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminImportExport_StorageDisabled(t *testing.T) {
	svc, _ := newTestService(nil)
	router := setupMenuTestRouter(svc)

	for _, path := range []string{"/admin/menu/import", "/admin/menu/export"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
	}
}

func TestAdminReload(t *testing.T) {
	svc, repo := newTestService(nil)
	router := setupMenuTestRouter(svc)

	_, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(context.Background(), Item{Name: "Al Pastor Taco", UnitPrice: 3.75}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/menu/reload", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":5}`, w.Body.String())

	items, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 5)
}
