// internal/handlers/admin.go
package handlers

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crownshop/storefront/internal/models"
	"github.com/crownshop/storefront/internal/repository"
	"github.com/crownshop/storefront/internal/services"
	"github.com/crownshop/storefront/internal/session"
	"github.com/crownshop/storefront/internal/state"
	"github.com/crownshop/storefront/internal/utils"
)

// 10 MB per image, matching the upload limit the webview enforces.
const maxImageSize = 10 << 20

type AdminHandler struct {
	sessions       *session.Manager
	adminService   *services.AdminService
	catalogService *services.CatalogService
}

func NewAdminHandler(sessions *session.Manager, adminService *services.AdminService, catalogService *services.CatalogService) *AdminHandler {
	return &AdminHandler{
		sessions:       sessions,
		adminService:   adminService,
		catalogService: catalogService,
	}
}

// adminSession resolves the caller's session and rejects anyone the
// ownership gate does not authorize.
func (h *AdminHandler) adminSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := currentSession(c, h.sessions)
	if !ok {
		return nil, false
	}

	access := sess.Access(c.Request.Context(), h.adminService)
	if !access.Authorized {
		utils.ForbiddenResponse(c, "")
		return nil, false
	}
	return sess, true
}

func draftPayload(sess *session.Session, restored bool) gin.H {
	payload := gin.H{"items": sess.Draft.Items()}
	if restored {
		payload["restored"] = true
	}
	return payload
}

// GET /admin/access
func (h *AdminHandler) GetAccess(c *gin.Context) {
	sess, ok := currentSession(c, h.sessions)
	if !ok {
		return
	}
	utils.SuccessResponse(c, sess.Access(c.Request.Context(), h.adminService))
}

// GET /admin/draft
//
// The first call of a session restores any stored draft; the restored
// flag tells the webview to show its one-time restoration banner.
func (h *AdminHandler) GetDraft(c *gin.Context) {
	sess, ok := h.adminSession(c)
	if !ok {
		return
	}

	restored := sess.Draft.Restore()
	utils.SuccessResponse(c, draftPayload(sess, restored))
}

// POST /admin/draft/files
//
// Accepts multipart uploads under the "images" field and appends one
// pending item per file.
func (h *AdminHandler) AddDraftFiles(c *gin.Context) {
	sess, ok := h.adminSession(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Expected multipart form upload", nil)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, "No images provided", nil)
		return
	}

	uploads := make([]state.FileUpload, 0, len(files))
	for _, header := range files {
		if header.Size > maxImageSize {
			utils.BadRequestResponse(c, fmt.Sprintf("%s exceeds the 10MB image limit", header.Filename), nil)
			return
		}

		file, err := header.Open()
		if err != nil {
			utils.BadRequestResponse(c, fmt.Sprintf("Failed to read %s", header.Filename), nil)
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			utils.BadRequestResponse(c, fmt.Sprintf("Failed to read %s", header.Filename), nil)
			return
		}

		uploads = append(uploads, state.FileUpload{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	sess.Draft.Add(uploads...)
	utils.SuccessResponse(c, draftPayload(sess, false))
}

// PATCH /admin/draft/:index
func (h *AdminHandler) UpdateDraftItem(c *gin.Context) {
	sess, ok := h.adminSession(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid draft index", nil)
		return
	}

	var patch state.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if err := sess.Draft.Update(index, patch); err != nil {
		utils.NotFoundResponse(c, "Draft item")
		return
	}

	utils.SuccessResponse(c, draftPayload(sess, false))
}

// DELETE /admin/draft/:index
func (h *AdminHandler) RemoveDraftItem(c *gin.Context) {
	sess, ok := h.adminSession(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid draft index", nil)
		return
	}

	if err := sess.Draft.Remove(index); err != nil {
		utils.NotFoundResponse(c, "Draft item")
		return
	}

	utils.SuccessResponse(c, draftPayload(sess, false))
}

// POST /admin/draft/publish
//
// Validation failures and upload/insert errors both keep the pending
// list intact so the admin can fix and retry.
func (h *AdminHandler) PublishAll(c *gin.Context) {
	sess, ok := h.adminSession(c)
	if !ok {
		return
	}

	count, err := h.adminService.PublishAll(c.Request.Context(), sess.Draft, sess.Notifier)
	if err != nil {
		h.publishError(c, err)
		return
	}

	plural := "s"
	if count == 1 {
		plural = ""
	}
	utils.SignalResponse(c, gin.H{
		"published": count,
		"items":     sess.Draft.Items(),
		"status":    fmt.Sprintf("Published %d product%s", count, plural),
	}, sess.Notifier.Drain())
}

// POST /admin/draft/:index/publish
func (h *AdminHandler) PublishOne(c *gin.Context) {
	sess, ok := h.adminSession(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid draft index", nil)
		return
	}

	product, err := h.adminService.PublishOne(c.Request.Context(), sess.Draft, index, sess.Notifier)
	if err != nil {
		h.publishError(c, err)
		return
	}

	utils.SignalResponse(c, gin.H{
		"product": product,
		"items":   sess.Draft.Items(),
		"status":  fmt.Sprintf("Published %s", product.Name),
	}, sess.Notifier.Drain())
}

func (h *AdminHandler) publishError(c *gin.Context, err error) {
	var validationErr *state.ValidationError
	if errors.As(err, &validationErr) {
		utils.BadRequestResponse(c, validationErr.Error(), nil)
		return
	}
	utils.InternalErrorResponse(c, err.Error())
}

// GET /admin/products
func (h *AdminHandler) GetProducts(c *gin.Context) {
	_, ok := h.adminSession(c)
	if !ok {
		return
	}

	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"products": products, "total": len(products)})
}

// PATCH /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	sess, ok := h.adminSession(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&patch)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), id, &patch)
	if err != nil {
		h.catalogError(c, err)
		return
	}

	utils.SignalResponse(c, gin.H{
		"product": product,
		"status":  "Product updated",
	}, sess.Notifier.Drain())
}

// DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	sess, ok := h.adminSession(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		h.catalogError(c, err)
		return
	}

	utils.SignalResponse(c, gin.H{
		"status": "Product deleted",
	}, sess.Notifier.Drain())
}

// POST /admin/products/:id/image
func (h *AdminHandler) ChangeProductImage(c *gin.Context) {
	sess, ok := h.adminSession(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "No image provided", nil)
		return
	}
	if header.Size > maxImageSize {
		utils.BadRequestResponse(c, "Image exceeds the 10MB limit", nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read image", nil)
		return
	}
	data, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read image", nil)
		return
	}

	product, err := h.catalogService.ChangeImage(c.Request.Context(), id, data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		h.catalogError(c, err)
		return
	}

	utils.SignalResponse(c, gin.H{
		"product": product,
		"status":  "Image updated",
	}, sess.Notifier.Drain())
}

// catalogError maps the repository sentinels onto the right HTTP
// shapes. A zero-affected-rows update means the row belongs to someone
// else, which the admin sees as a permission failure.
func (h *AdminHandler) catalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotPermitted):
		utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, repository.ErrProductNotFound):
		utils.NotFoundResponse(c, "Product")
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
