// internal/handlers/auth.go
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/crownshop/storefront/internal/config"
	"github.com/crownshop/storefront/internal/services"
	"github.com/crownshop/storefront/internal/session"
	"github.com/crownshop/storefront/internal/utils"
)

type AuthHandler struct {
	config       *config.Config
	sessions     *session.Manager
	adminService *services.AdminService
}

func NewAuthHandler(cfg *config.Config, sessions *session.Manager, adminService *services.AdminService) *AuthHandler {
	return &AuthHandler{
		config:       cfg,
		sessions:     sessions,
		adminService: adminService,
	}
}

type createSessionRequest struct {
	InitData string `json:"init_data" binding:"required"`
}

// POST /auth/session
//
// Exchanges the signed launch payload from the chat host for a session
// token. Admin access is resolved here so the webview knows immediately
// whether to show the management surface.
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "init_data is required", nil)
		return
	}

	user, err := utils.VerifyInitData(req.InitData, h.config.Telegram.BotToken, 24*time.Hour)
	if err != nil {
		logrus.WithError(err).Warn("Rejected init data")
		utils.UnauthorizedResponse(c, "Invalid launch payload")
		return
	}

	sess, err := h.sessions.GetOrCreate(user.ID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("Failed to open session state")
		utils.InternalErrorResponse(c, "")
		return
	}

	access := sess.Access(c.Request.Context(), h.adminService)

	token, err := utils.GenerateSessionToken(user.ID, time.Duration(h.config.Session.TokenTTL)*time.Hour)
	if err != nil {
		logrus.WithError(err).Error("Failed to sign session token")
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"token":  token,
		"user":   user,
		"access": access,
		"theme":  sess.Preferences.Theme(),
	})
}
