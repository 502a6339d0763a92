// internal/handlers/favorites.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/crownshop/storefront/internal/models"
	"github.com/crownshop/storefront/internal/session"
	"github.com/crownshop/storefront/internal/utils"
)

type FavoritesHandler struct {
	sessions *session.Manager
}

func NewFavoritesHandler(sessions *session.Manager) *FavoritesHandler {
	return &FavoritesHandler{sessions: sessions}
}

// GET /favorites
func (h *FavoritesHandler) GetFavorites(c *gin.Context) {
	sess, ok := currentSession(c, h.sessions)
	if !ok {
		return
	}
	utils.SuccessResponse(c, gin.H{"products": sess.Favorites.All()})
}

type toggleFavoriteRequest struct {
	Product models.Product `json:"product" binding:"required"`
}

// POST /favorites/toggle
func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
	sess, ok := currentSession(c, h.sessions)
	if !ok {
		return
	}

	var req toggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	favorited := sess.Favorites.Toggle(req.Product)
	utils.SignalResponse(c, gin.H{
		"favorited": favorited,
		"products":  sess.Favorites.All(),
	}, sess.Notifier.Drain())
}
