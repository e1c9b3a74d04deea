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
	"github.com/c41m07/sf-restaurant/middlewares"
)

func newReservationRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctl := NewReservationController(db, zap.NewNop(), nil)
	auth := middlewares.AuthMiddleware(db)
	r.GET("/api/reservation/", auth, ctl.List)
	r.POST("/api/reservation/add", auth, ctl.Create)
	r.GET("/api/reservation/:id", auth, ctl.Show)
	r.PUT("/api/reservation/:id", auth, ctl.Update)
	r.DELETE("/api/reservation/:id", auth, ctl.Delete)
	return r
}

func TestReservationEndpointLifecycle(t *testing.T) {
	db := setupTestDB(t)
	r := newReservationRouter(db)
	owner := seedUser(t, db, "resa@test.fr", "x")
	restaurant := seedOwnedRestaurant(t, db, owner)

	body := fmt.Sprintf(`{"guest_number":4,"reservation_date":"2026-09-01","reservation_time":"19:30","restaurant_id":%d}`, restaurant.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservation/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+owner.ApiToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var reservation entity.Reservation
	if err := db.First(&reservation).Error; err != nil {
		t.Fatalf("load reservation: %v", err)
	}
	if reservation.UserID != owner.ID {
		t.Fatalf("expected reservation for user %d got %d", owner.ID, reservation.UserID)
	}
	if reservation.Status != entity.ReservationPending {
		t.Fatalf("expected pending got %s", reservation.Status)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/reservation/%d", reservation.ID), nil)
	req2.Header.Set("Authorization", "Bearer "+owner.ApiToken)
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w2.Code)
	}
	var detail struct {
		GuestNumber int    `json:"guest_number"`
		Status      string `json:"status"`
		User        *struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if detail.GuestNumber != 4 || detail.Status != "pending" {
		t.Fatalf("unexpected detail %+v", detail)
	}
	if detail.User == nil || detail.User.Email != "resa@test.fr" {
		t.Fatalf("unexpected user %+v", detail.User)
	}

	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/reservation/%d", reservation.ID), strings.NewReader(`{"status":"confirmed"}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("Authorization", "Bearer "+owner.ApiToken)
	r.ServeHTTP(w3, req3)
	if w3.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w3.Code, w3.Body.String())
	}
	if !strings.Contains(w3.Body.String(), "Réservation mise à jour") {
		t.Fatalf("unexpected body %s", w3.Body.String())
	}

	w4 := httptest.NewRecorder()
	req4 := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/reservation/%d", reservation.ID), nil)
	req4.Header.Set("Authorization", "Bearer "+owner.ApiToken)
	r.ServeHTTP(w4, req4)
	if w4.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w4.Code)
	}
	if !strings.Contains(w4.Body.String(), fmt.Sprintf("Réservation d'id %d supprimée avec succès", reservation.ID)) {
		t.Fatalf("unexpected body %s", w4.Body.String())
	}
}

func TestReservationEndpointRejectsOverCapacity(t *testing.T) {
	db := setupTestDB(t)
	r := newReservationRouter(db)
	owner := seedUser(t, db, "plein@test.fr", "x")
	restaurant := seedOwnedRestaurant(t, db, owner)

	body := fmt.Sprintf(`{"guest_number":99,"reservation_date":"2026-09-01","reservation_time":"19:30","restaurant_id":%d}`, restaurant.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservation/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+owner.ApiToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "capacité") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestReservationNotFoundMessage(t *testing.T) {
	db := setupTestDB(t)
	r := newReservationRouter(db)
	owner := seedUser(t, db, "vide@test.fr", "x")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservation/123", nil)
	req.Header.Set("Authorization", "Bearer "+owner.ApiToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Réservation d'id 123 introuvable") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
