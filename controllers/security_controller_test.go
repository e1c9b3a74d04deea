package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/c41m07/sf-restaurant/entity"
	"github.com/c41m07/sf-restaurant/middlewares"
	"github.com/c41m07/sf-restaurant/utils"
)

func newSecurityRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctl := NewSecurityController(db, "secret-test", time.Minute, zap.NewNop())
	r.POST("/api/security/register", ctl.Register)
	r.POST("/api/security/login", ctl.Login)
	r.GET("/api/security/me", middlewares.AuthMiddleware(db), ctl.Me)
	r.GET("/api/security/ticket", middlewares.AuthMiddleware(db), ctl.Ticket)
	return r
}

type authBody struct {
	User     string   `json:"user"`
	ApiToken string   `json:"apiToken"`
	Role     []string `json:"role"`
}

func TestRegisterThenLogin(t *testing.T) {
	db := setupTestDB(t)
	r := newSecurityRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/security/register",
		strings.NewReader(`{"email":"marc@test.fr","password":"s3cret","first_name":"Marc","last_name":"Petit"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var registered authBody
	if err := json.Unmarshal(w.Body.Bytes(), &registered); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if registered.User != "marc@test.fr" {
		t.Fatalf("unexpected user %q", registered.User)
	}
	if len(registered.ApiToken) != 40 {
		t.Fatalf("expected 40 char token got %q", registered.ApiToken)
	}

	// Le mot de passe est stocké haché, jamais en clair.
	var stored entity.User
	if err := db.Where("email = ?", "marc@test.fr").First(&stored).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.Password == "s3cret" {
		t.Fatal("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")); err != nil {
		t.Fatalf("hash mismatch: %v", err)
	}

	// Login renvoie le même apiToken qu'à l'inscription.
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/api/security/login",
		strings.NewReader(`{"email":"marc@test.fr","password":"s3cret"}`))
	req2.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w2.Code, w2.Body.String())
	}
	var logged authBody
	if err := json.Unmarshal(w2.Body.Bytes(), &logged); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if logged.ApiToken != registered.ApiToken {
		t.Fatal("expected stable api token across register and login")
	}

	// Email déjà pris.
	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodPost, "/api/security/register",
		strings.NewReader(`{"email":"marc@test.fr","password":"autre"}`))
	req3.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w3, req3)
	if w3.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w3.Code)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	r := newSecurityRouter(db)
	seedUser(t, db, "jean@test.fr", "bon-mdp")

	for _, body := range []string{
		`{"email":"jean@test.fr","password":"mauvais"}`,
		`{"email":"inconnu@test.fr","password":"bon-mdp"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/security/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 got %d for %s", w.Code, body)
		}
		if !strings.Contains(w.Body.String(), "User not found") {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	}
}

func TestMeRequiresToken(t *testing.T) {
	db := setupTestDB(t)
	r := newSecurityRouter(db)
	user := seedUser(t, db, "me@test.fr", "x")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/security/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/api/security/me", nil)
	req2.Header.Set("Authorization", "Bearer "+user.ApiToken)
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w2.Code, w2.Body.String())
	}
	if !strings.Contains(w2.Body.String(), "me@test.fr") {
		t.Fatalf("unexpected body %s", w2.Body.String())
	}
}

func TestTicketEndpoint(t *testing.T) {
	db := setupTestDB(t)
	r := newSecurityRouter(db)
	user := seedUser(t, db, "ws@test.fr", "x")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/security/ticket", nil)
	req.Header.Set("Authorization", "Bearer "+user.ApiToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Ticket    string `json:"ticket"`
		ExpiresIn int    `json:"expires_in"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	claims, err := utils.ParseTicket(body.Ticket, "secret-test")
	if err != nil {
		t.Fatalf("parse ticket: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user %d got %d", user.ID, claims.UserID)
	}
}
