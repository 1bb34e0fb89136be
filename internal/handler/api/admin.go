package api

import (
	"net/http"
	"strconv"

	reqdto "greenrfq/internal/handler/dto/request"
	resdto "greenrfq/internal/handler/dto/response"
	"greenrfq/internal/handler/httperr"
	"greenrfq/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	ingest       commands.IngestionCommands
	metrics      commands.MetricsCommands
	entitlements commands.EntitlementCommands
	dispatch     commands.DispatchCommands
	distribution commands.DistributionCommands
}

func NewAdminHandler(ingest commands.IngestionCommands, metrics commands.MetricsCommands, entitlements commands.EntitlementCommands, dispatch commands.DispatchCommands, distribution commands.DistributionCommands) *AdminHandler {
	return &AdminHandler{
		ingest:       ingest,
		metrics:      metrics,
		entitlements: entitlements,
		dispatch:     dispatch,
		distribution: distribution,
	}
}

// @Summary Ingest suppliers
// @Description Bulk-ingest scraped supplier records as shadow profiles
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IngestRequest true "Supplier records"
// @Success 200 {object} resdto.IngestResponse
// @Failure 400 {object} map[string]string
// @Router /admin/ingest [post]
func (h *AdminHandler) Ingest(c *gin.Context) {
	var req reqdto.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.ingest.Ingest(c.Request.Context(), req.ToRecords())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Ingestion failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIngestResult(result))
}

// @Summary Distribute RFQ
// @Description Re-run distribution for an RFQ, for retries after a failed run or late invites
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Param request body reqdto.DistributeRequest false "Distribution options"
// @Success 200 {object} resdto.DistributionSummary
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/rfqs/{id}/distribute [post]
func (h *AdminHandler) Distribute(c *gin.Context) {
	rfqID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	// Body is optional; defaults mirror the create-time distribution.
	var req reqdto.DistributeRequest
	_ = c.ShouldBindJSON(&req)
	result, err := h.distribution.Distribute(c.Request.Context(), req.ToInput(rfqID))
	if err != nil {
		abortRFQCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDistributeResult(result))
}

// @Summary Recompute response stats
// @Description Rebuild aggregated response stats for a supplier
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /admin/suppliers/{id}/stats/recompute [post]
func (h *AdminHandler) RecomputeStats(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if _, err := h.metrics.Recompute(c.Request.Context(), supplierID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Recompute failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reset monthly usage
// @Description Reset quota counters for all subscriptions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Router /admin/usage/reset [post]
func (h *AdminHandler) ResetUsage(c *gin.Context) {
	affected, err := h.entitlements.ResetMonthlyUsage(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Reset failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reset": affected})
}

// @Summary Dispatch due notifications
// @Description Notify suppliers whose queue entries became visible
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Batch size"
// @Success 200 {object} map[string]int64
// @Router /admin/dispatch/notify [post]
func (h *AdminHandler) NotifyDue(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	result, err := h.dispatch.NotifyDue(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Dispatch failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"selected": result.Selected,
		"notified": result.Notified,
		"failed":   result.Failed,
	})
}

// @Summary Sweep expired entries
// @Description Expire queue entries past their visibility window
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Router /admin/dispatch/sweep [post]
func (h *AdminHandler) SweepExpired(c *gin.Context) {
	expired, err := h.dispatch.SweepExpired(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Sweep failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expired": expired})
}
