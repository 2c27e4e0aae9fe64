package api

import (
	"errors"
	"net/http"

	reqdto "veritag/internal/handler/dto/request"
	resdto "veritag/internal/handler/dto/response"
	"veritag/internal/handler/httperr"
	"veritag/internal/handler/middleware"
	"veritag/internal/pkg/config"
	"veritag/internal/usecase/commands"
	"veritag/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	cmds          commands.ProductCommands
	q             queries.ProductQueries
	resolver      queries.ImageURLResolver
	maxUploadSize int64
}

func NewProductHandler(cmds commands.ProductCommands, q queries.ProductQueries, resolver queries.ImageURLResolver, cfg config.Config) *ProductHandler {
	return &ProductHandler{
		cmds:          cmds,
		q:             q,
		resolver:      resolver,
		maxUploadSize: cfg.Media.MaxUploadSize,
	}
}

// @Summary Create product
// @Description Register a new product line with an image
// @Tags products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Product name"
// @Param batch_size formData int true "Codes minted per batch"
// @Param unit_price_cents formData int false "Unit price in cents"
// @Param image formData file true "Product image"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /admin/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Product image is required", nil)
		return
	}
	if fileHeader.Size > h.maxUploadSize {
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, errors.New("upload too large"), "Image exceeds the upload size limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read image", nil)
		return
	}
	defer file.Close()

	snap, err := h.cmds.CreateProduct(c.Request.Context(), commands.CreateProductInput{
		Name:           req.Name,
		BatchSize:      req.BatchSize,
		UnitPriceCents: req.UnitPriceCents,
		Image: &commands.ImageUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Body:        file,
		},
	}, principal)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product data", nil)
		case errors.Is(err, commands.ErrImageUploadFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Image upload failed", nil)
		case errors.Is(err, commands.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromProductSnapshot(snap, h.resolver.URL(snap.ImageKey)))
}

// @Summary List own products
// @Description List products owned by the authenticated issuer, newest first
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ProductResponse
// @Failure 401 {object} map[string]string
// @Router /admin/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list products", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": resdto.FromProductList(views)})
}

func currentPrincipal(c *gin.Context) (commands.Principal, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return commands.Principal{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return commands.Principal{}, false
	}
	return commands.Principal{ID: userID, Role: role}, true
}
