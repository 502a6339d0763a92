// internal/handlers/preferences.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/crownshop/storefront/internal/models"
	"github.com/crownshop/storefront/internal/session"
	"github.com/crownshop/storefront/internal/utils"
)

type PreferencesHandler struct {
	sessions *session.Manager
}

func NewPreferencesHandler(sessions *session.Manager) *PreferencesHandler {
	return &PreferencesHandler{sessions: sessions}
}

func preferencesPayload(sess *session.Session) gin.H {
	return gin.H{
		"theme": sess.Preferences.Theme(),
		"location": gin.H{
			"asked":   sess.Preferences.LocationAsked(),
			"enabled": sess.Preferences.LocationEnabled(),
			"name":    sess.Preferences.LocationName(),
		},
	}
}

// GET /preferences
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	sess, ok := currentSession(c, h.sessions)
	if !ok {
		return
	}
	utils.SuccessResponse(c, preferencesPayload(sess))
}

type updatePreferencesRequest struct {
	Theme           *models.Theme `json:"theme,omitempty"`
	LocationAsked   *bool         `json:"location_asked,omitempty"`
	LocationEnabled *bool         `json:"location_enabled,omitempty"`
	LocationName    *string       `json:"location_name,omitempty"`
}

// PUT /preferences
//
// Partial update: only the fields present in the body are written.
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	sess, ok := currentSession(c, h.sessions)
	if !ok {
		return
	}

	var req updatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if req.Theme != nil {
		if *req.Theme != models.ThemeLight && *req.Theme != models.ThemeDark {
			utils.BadRequestResponse(c, "theme must be light or dark", nil)
			return
		}
		sess.Preferences.SetTheme(*req.Theme)
	}
	if req.LocationAsked != nil && *req.LocationAsked {
		sess.Preferences.MarkLocationAsked()
	}
	if req.LocationEnabled != nil {
		sess.Preferences.SetLocationEnabled(*req.LocationEnabled)
	}
	if req.LocationName != nil {
		sess.Preferences.SetLocationName(*req.LocationName)
	}

	utils.SuccessResponse(c, preferencesPayload(sess))
}
