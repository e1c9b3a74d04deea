package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/c41m07/sf-restaurant/entity"
	"github.com/c41m07/sf-restaurant/middlewares"
	"github.com/c41m07/sf-restaurant/pkg/resp"
	"github.com/c41m07/sf-restaurant/repository"
	"github.com/c41m07/sf-restaurant/utils"
)

type registerPayload struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required"`
	Roles       []string `json:"roles"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	GuestNumber *int     `json:"guest_number"`
	Allergy     *string  `json:"allergy"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SecurityController struct {
	Repo      *repository.UserRepository
	JWTSecret string
	TicketTTL time.Duration
	Logger    *zap.Logger
}

func NewSecurityController(db *gorm.DB, jwtSecret string, ticketTTL time.Duration, logger *zap.Logger) *SecurityController {
	return &SecurityController{
		Repo:      repository.NewUserRepository(db),
		JWTSecret: jwtSecret,
		TicketTTL: ticketTTL,
		Logger:    logger,
	}
}

// POST /api/security/register
func (ctl *SecurityController) Register(c *gin.Context) {
	var req registerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	existing, err := ctl.Repo.FindByEmail(req.Email)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if existing != nil {
		resp.BadRequest(c, "email déjà utilisé")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	user := entity.NewUser()
	user.Email = req.Email
	user.Password = string(hash)
	user.Roles = entity.RoleList(req.Roles)
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.GuestNumber = req.GuestNumber
	user.Allergy = req.Allergy
	user.CreatedAt = time.Now()

	if err := ctl.Repo.Create(user); err != nil {
		ctl.Logger.Error("inscription utilisateur", zap.Error(err))
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"user":     user.UserIdentifier(),
		"apiToken": user.ApiToken,
		"role":     user.GrantedRoles(),
	})
}

// POST /api/security/login
func (ctl *SecurityController) Login(c *gin.Context) {
	var req loginPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Repo.FindByEmail(req.Email)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		resp.Unauthorized(c, "User not found")
		return
	}

	resp.OK(c, gin.H{
		"user":     user.UserIdentifier(),
		"apiToken": user.ApiToken,
		"role":     user.GrantedRoles(),
	})
}

// GET /api/security/me
func (ctl *SecurityController) Me(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		resp.Unauthorized(c, "authentification requise")
		return
	}
	resp.OK(c, gin.H{
		"id":           user.ID,
		"uuid":         user.UUID,
		"user":         user.UserIdentifier(),
		"first_name":   user.FirstName,
		"last_name":    user.LastName,
		"guest_number": user.GuestNumber,
		"allergy":      user.Allergy,
		"role":         user.GrantedRoles(),
	})
}

// GET /api/security/ticket
// Échange l'apiToken porté en header contre un ticket court-vécu pour le WebSocket.
func (ctl *SecurityController) Ticket(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		resp.Unauthorized(c, "authentification requise")
		return
	}

	ticket, err := utils.GenerateTicket(user.ID, user.GrantedRoles(), ctl.JWTSecret, ctl.TicketTTL)
	if err != nil {
		ctl.Logger.Error("génération ticket", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ticket": ticket, "expires_in": int(ctl.TicketTTL.Seconds())})
}
