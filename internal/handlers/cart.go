// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crownshop/storefront/internal/models"
	"github.com/crownshop/storefront/internal/session"
	"github.com/crownshop/storefront/internal/utils"
)

type CartHandler struct {
	sessions *session.Manager
}

func NewCartHandler(sessions *session.Manager) *CartHandler {
	return &CartHandler{sessions: sessions}
}

func cartPayload(sess *session.Session) gin.H {
	return gin.H{
		"items":       sess.Cart.Items(),
		"total_items": sess.Cart.TotalItems(),
		"total_price": sess.Cart.TotalPrice(),
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sess, ok := currentSession(c, h.sessions)
	if !ok {
		return
	}
	utils.SuccessResponse(c, cartPayload(sess))
}

type addToCartRequest struct {
	Product  models.Product `json:"product" binding:"required"`
	Quantity int            `json:"quantity"`
}

// POST /cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	sess, ok := currentSession(c, h.sessions)
	if !ok {
		return
	}

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sess.Cart.Add(req.Product, req.Quantity)
	utils.SignalResponse(c, cartPayload(sess), sess.Notifier.Drain())
}

// DELETE /cart/:productId
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sess, ok := currentSession(c, h.sessions)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	sess.Cart.Remove(productID)
	utils.SignalResponse(c, cartPayload(sess), sess.Notifier.Drain())
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sess, ok := currentSession(c, h.sessions)
	if !ok {
		return
	}

	sess.Cart.Clear()
	utils.SignalResponse(c, cartPayload(sess), sess.Notifier.Drain())
}
