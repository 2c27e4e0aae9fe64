package api

import (
	"errors"
	"net/http"

	reqdto "veritag/internal/handler/dto/request"
	resdto "veritag/internal/handler/dto/response"
	"veritag/internal/handler/httperr"
	"veritag/internal/usecase/commands"
	"veritag/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CodeHandler struct {
	cmds commands.CodeCommands
	q    queries.CodeQueries
}

func NewCodeHandler(cmds commands.CodeCommands, q queries.CodeQueries) *CodeHandler {
	return &CodeHandler{cmds: cmds, q: q}
}

// @Summary Generate codes
// @Description Mint a batch of codes for an owned product. Each (product, batch number) pair is minted at most once.
// @Tags codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateCodesRequest true "Generate codes request"
// @Success 200 {object} resdto.GenerateCodesResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/generate-codes [post]
func (h *CodeHandler) GenerateCodes(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.GenerateCodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}

	result, err := h.cmds.IssueBatch(c.Request.Context(), productID, req.BatchNumber, principal)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid batch number", nil)
		case errors.Is(err, commands.ErrProductNotFound), errors.Is(err, commands.ErrNotOwner):
			// Not-owned products are reported as missing so issuers cannot
			// probe other issuers' catalogs.
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errors.Is(err, commands.ErrBatchAlreadyIssued):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Batch was already issued for this product", nil)
		case errors.Is(err, commands.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Code generation failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromIssueBatchResult(result))
}

// @Summary Look up code
// @Description Resolve a code to its product details and current state
// @Tags codes
// @Produce json
// @Security BearerAuth
// @Param code path string true "Code value"
// @Success 200 {object} resdto.CodeLookupResponse
// @Failure 404 {object} map[string]string
// @Router /user/search/{code} [get]
func (h *CodeHandler) Search(c *gin.Context) {
	value := c.Param("code")

	view, err := h.q.FindByValue(c.Request.Context(), value)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Code not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Lookup failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCodeView(view))
}

// @Summary Use code
// @Description Redeem a code. The first redemption transitions it to used; later attempts return the same used record.
// @Tags codes
// @Produce json
// @Security BearerAuth
// @Param code path string true "Code value"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /user/use-code/{code} [post]
func (h *CodeHandler) UseCode(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	value := c.Param("code")

	snap, err := h.cmds.Redeem(c.Request.Context(), value, principal)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCode):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Code not found", nil)
		case errors.Is(err, commands.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Redemption failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCodeSnapshot(snap))
}
