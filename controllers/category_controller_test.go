package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/c41m07/sf-restaurant/entity"
)

func newCategoryRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctl := NewCategoryController(db, zap.NewNop())
	r.GET("/api/category/", ctl.List)
	r.POST("/api/category/add", ctl.Create)
	r.GET("/api/category/:id", ctl.Show)
	r.PUT("/api/category/:id", ctl.Update)
	r.DELETE("/api/category/:id", ctl.Delete)
	return r
}

func TestCategoryNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := newCategoryRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/category/999", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Catégorie d'id 999 introuvable") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestCategoryLifecycle(t *testing.T) {
	db := setupTestDB(t)
	r := newCategoryRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/category/add", strings.NewReader(`{"title":"Entrées"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var category entity.Category
	if err := db.Where("title = ?", "Entrées").First(&category).Error; err != nil {
		t.Fatalf("load category: %v", err)
	}
	if category.UUID == "" {
		t.Fatal("expected uuid to be generated")
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/category/%d", category.ID), nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w2.Code)
	}
	var detail struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if detail.Title != "Entrées" {
		t.Fatalf("expected Entrées got %q", detail.Title)
	}

	// Mise à jour partielle : seul le titre change.
	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/category/%d", category.ID), strings.NewReader(`{"title":"Desserts"}`))
	req3.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w3, req3)
	if w3.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w3.Code, w3.Body.String())
	}
	if !strings.Contains(w3.Body.String(), "Catégorie mise à jour") {
		t.Fatalf("unexpected body %s", w3.Body.String())
	}

	var updated entity.Category
	if err := db.First(&updated, category.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if updated.Title != "Desserts" {
		t.Fatalf("expected Desserts got %q", updated.Title)
	}
	if updated.UUID != category.UUID {
		t.Fatal("expected uuid to survive partial update")
	}
	if updated.UpdatedAt == nil {
		t.Fatal("expected updatedAt to be set")
	}

	w4 := httptest.NewRecorder()
	r.ServeHTTP(w4, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/category/%d", category.ID), nil))
	if w4.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w4.Code)
	}
	if !strings.Contains(w4.Body.String(), fmt.Sprintf("Catégorie d'id %d supprimée avec succès", category.ID)) {
		t.Fatalf("unexpected body %s", w4.Body.String())
	}

	w5 := httptest.NewRecorder()
	r.ServeHTTP(w5, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/category/%d", category.ID), nil))
	if w5.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete got %d", w5.Code)
	}
}

func TestCategoryCreateRequiresTitle(t *testing.T) {
	db := setupTestDB(t)
	r := newCategoryRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/category/add", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}
