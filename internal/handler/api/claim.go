package api

import (
	"errors"
	"net/http"
	"strconv"

	"greenrfq/internal/domain/shadow"
	reqdto "greenrfq/internal/handler/dto/request"
	resdto "greenrfq/internal/handler/dto/response"
	"greenrfq/internal/handler/httperr"
	"greenrfq/internal/usecase/commands"
	"greenrfq/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClaimHandler struct {
	cmds commands.ClaimCommands
	q    queries.ShadowQueries
}

func NewClaimHandler(cmds commands.ClaimCommands, q queries.ShadowQueries) *ClaimHandler {
	return &ClaimHandler{cmds: cmds, q: q}
}

// @Summary Request claim token
// @Description Issue a claim token for an unclaimed supplier profile (operator only)
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shadow supplier ID"
// @Success 201 {object} resdto.ClaimTokenResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /claims/{id}/token [post]
func (h *ClaimHandler) RequestToken(c *gin.Context) {
	shadowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	result, err := h.cmds.RequestClaim(c.Request.Context(), shadowID, c.ClientIP())
	if err != nil {
		abortClaimError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromClaimTokenResult(result))
}

// @Summary Start verification
// @Description Validate a claim token and send a verification code
// @Tags claims
// @Accept json
// @Produce json
// @Param request body reqdto.StartVerificationRequest true "Claim token"
// @Success 200 {object} resdto.VerificationStartedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /claims/verify [post]
func (h *ClaimHandler) StartVerification(c *gin.Context) {
	var req reqdto.StartVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.StartVerification(c.Request.Context(), req.Token, c.ClientIP())
	if err != nil {
		abortClaimError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVerificationResult(result))
}

// @Summary Complete claim
// @Description Verify the code and convert the shadow profile into a claimed account
// @Tags claims
// @Accept json
// @Produce json
// @Param request body reqdto.CompleteClaimRequest true "Verification"
// @Success 200 {object} resdto.CompleteClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /claims/complete [post]
func (h *ClaimHandler) Complete(c *gin.Context) {
	var req reqdto.CompleteClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CompleteClaim(c.Request.Context(), commands.CompleteClaimInput{
		RawToken: req.Token,
		Code:     req.Code,
		Email:    req.Email,
		Password: req.Password,
		Actor:    c.ClientIP(),
	})
	if err != nil {
		abortClaimError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompleteClaimResult(result))
}

// @Summary Opt out
// @Description Exclude a shadow profile from outreach permanently
// @Tags claims
// @Accept json
// @Param id path string true "Shadow supplier ID"
// @Param request body reqdto.OptOutRequest false "Opt-out reason"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /claims/{id}/opt-out [post]
func (h *ClaimHandler) OptOut(c *gin.Context) {
	shadowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	// Body is optional; an absent reason is stored as empty.
	var req reqdto.OptOutRequest
	_ = c.ShouldBindJSON(&req)
	if err := h.cmds.OptOut(c.Request.Context(), shadowID, req.Reason, c.ClientIP()); err != nil {
		abortClaimError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Claim status
// @Description Show whether a shadow profile is claimable
// @Tags claims
// @Produce json
// @Param id path string true "Shadow supplier ID"
// @Success 200 {object} resdto.ClaimStatusResponse
// @Failure 404 {object} map[string]string
// @Router /claims/{id} [get]
func (h *ClaimHandler) Status(c *gin.Context) {
	shadowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.ClaimStatus(c.Request.Context(), shadowID)
	if err != nil {
		if errors.Is(err, queries.ErrShadowNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load claim status", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClaimStatusView(view))
}

// @Summary Claim audit trail
// @Description List claim attempts for a shadow profile
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shadow supplier ID"
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.ClaimAuditItemResponse
// @Failure 401 {object} map[string]string
// @Router /admin/claims/{id}/audit [get]
func (h *ClaimHandler) AuditTrail(c *gin.Context) {
	shadowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	items, err := h.q.AuditTrail(c.Request.Context(), shadowID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load audit trail", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClaimAudit(items))
}

func abortClaimError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrShadowNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, shadow.ErrAlreadyClaimed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Profile already claimed", nil)
	case errors.Is(err, shadow.ErrOptedOut):
		httperr.AbortWithError(c, http.StatusConflict, err, "Profile opted out", nil)
	case errors.Is(err, shadow.ErrLockedOut):
		httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Too many failed attempts", nil)
	case errors.Is(err, shadow.ErrTokenLimitReached):
		httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Token limit reached", nil)
	case errors.Is(err, commands.ErrClaimTokenInvalid),
		errors.Is(err, shadow.ErrTokenExpired),
		errors.Is(err, shadow.ErrTokenAlreadyUsed),
		errors.Is(err, shadow.ErrTokenInvalidated),
		errors.Is(err, shadow.ErrCodeMismatch),
		errors.Is(err, shadow.ErrCodeExpired),
		errors.Is(err, shadow.ErrNotPending):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired claim credentials", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Claim operation failed", nil)
	}
}
