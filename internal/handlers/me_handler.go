package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/httpresp"
	"github.com/salonworks/salon-scheduler/internal/middleware"
	"github.com/salonworks/salon-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

type UpdateMeRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (h *MeHandler) Get(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var user models.User
	if err := h.db.Preload("Salon").First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	httpresp.OK(c, user)
}

func (h *MeHandler) Update(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			httperr.BadRequest(c, "invalid_request", "password must be at least 6 characters")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "internal_error", "failed to hash password")
			return
		}
		user.PasswordHash = string(hashed)
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update profile")
		return
	}

	httpresp.OK(c, user)
}
