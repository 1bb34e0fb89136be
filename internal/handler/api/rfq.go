package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "greenrfq/internal/handler/dto/request"
	resdto "greenrfq/internal/handler/dto/response"
	"greenrfq/internal/handler/httperr"
	"greenrfq/internal/handler/middleware"
	"greenrfq/internal/usecase/commands"
	"greenrfq/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RFQHandler struct {
	cmds     commands.RFQCommands
	dispatch commands.DispatchCommands
	q        queries.RFQQueries
	queueQ   queries.QueueQueries
}

func NewRFQHandler(cmds commands.RFQCommands, dispatch commands.DispatchCommands, q queries.RFQQueries, queueQ queries.QueueQueries) *RFQHandler {
	return &RFQHandler{cmds: cmds, dispatch: dispatch, q: q, queueQ: queueQ}
}

// @Summary Create RFQ
// @Description Create a request for quote and distribute it to matching suppliers
// @Tags rfqs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRFQRequest true "RFQ request"
// @Success 201 {object} resdto.CreateRFQResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /rfqs [post]
func (h *RFQHandler) Create(c *gin.Context) {
	buyerID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing actor"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateRFQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateRFQ(c.Request.Context(), req.ToInput(buyerID))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create RFQ failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateRFQResult(result))
}

// @Summary Get RFQ
// @Description Get one of the caller's RFQs with its quotes
// @Tags rfqs
// @Produce json
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Success 200 {object} resdto.RFQResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rfqs/{id} [get]
func (h *RFQHandler) Get(c *gin.Context) {
	buyerID, rfqID, ok := h.actorAndID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), buyerID, rfqID)
	if err != nil {
		abortRFQQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRFQView(view))
}

// @Summary List RFQs
// @Description List the caller's RFQs
// @Tags rfqs
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.RFQListItemResponse
// @Failure 401 {object} map[string]string
// @Router /rfqs [get]
func (h *RFQHandler) List(c *gin.Context) {
	buyerID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing actor"), "Unauthorized", nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := h.q.ListByBuyer(c.Request.Context(), buyerID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load RFQs", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRFQList(items))
}

// @Summary Queue status
// @Description Show the distribution queue for one of the caller's RFQs
// @Tags rfqs
// @Produce json
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Success 200 {object} resdto.QueueStatusResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rfqs/{id}/queue [get]
func (h *RFQHandler) QueueStatus(c *gin.Context) {
	buyerID, rfqID, ok := h.actorAndID(c)
	if !ok {
		return
	}
	view, err := h.queueQ.StatusByRFQ(c.Request.Context(), buyerID, rfqID)
	if err != nil {
		abortRFQQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQueueStatusView(view))
}

// @Summary Close RFQ
// @Description Close an RFQ so no further quotes are accepted
// @Tags rfqs
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /rfqs/{id}/close [post]
func (h *RFQHandler) Close(c *gin.Context) {
	buyerID, rfqID, ok := h.actorAndID(c)
	if !ok {
		return
	}
	if err := h.cmds.CloseRFQ(c.Request.Context(), rfqID, buyerID); err != nil {
		abortRFQCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Archive RFQ
// @Description Archive a closed RFQ
// @Tags rfqs
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /rfqs/{id}/archive [post]
func (h *RFQHandler) Archive(c *gin.Context) {
	buyerID, rfqID, ok := h.actorAndID(c)
	if !ok {
		return
	}
	if err := h.cmds.ArchiveRFQ(c.Request.Context(), rfqID, buyerID); err != nil {
		abortRFQCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Submit quote
// @Description Submit a quote for a visible RFQ
// @Tags inbox
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Param request body reqdto.SubmitResponseRequest true "Quote"
// @Success 201 {object} resdto.SubmitResponseResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /inbox/{id}/respond [post]
func (h *RFQHandler) Respond(c *gin.Context) {
	supplierID, rfqID, ok := h.actorAndID(c)
	if !ok {
		return
	}
	var req reqdto.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SubmitResponse(c.Request.Context(), req.ToInput(rfqID, supplierID))
	if err != nil {
		abortRFQCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.SubmitResponseResponse{ResponseID: result.ResponseID.String()})
}

// @Summary Supplier inbox
// @Description List RFQs currently visible to the calling supplier
// @Tags inbox
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.InboxItemResponse
// @Failure 401 {object} map[string]string
// @Router /inbox [get]
func (h *RFQHandler) Inbox(c *gin.Context) {
	supplierID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing actor"), "Unauthorized", nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := h.queueQ.InboxForSupplier(c.Request.Context(), supplierID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load inbox", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInboxItems(items))
}

// @Summary Mark viewed
// @Description Record that the calling supplier opened an RFQ
// @Tags inbox
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /inbox/{id}/viewed [post]
func (h *RFQHandler) MarkViewed(c *gin.Context) {
	supplierID, rfqID, ok := h.actorAndID(c)
	if !ok {
		return
	}
	if err := h.dispatch.MarkViewed(c.Request.Context(), rfqID, supplierID); err != nil {
		switch {
		case errors.Is(err, commands.ErrEntryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errors.Is(err, commands.ErrEntryExpired):
			httperr.AbortWithError(c, http.StatusGone, err, "RFQ window expired", nil)
		case errors.Is(err, commands.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Entry already progressed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to mark viewed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RFQHandler) actorAndID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing actor"), "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return actorID, id, true
}

func abortRFQQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrRFQNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "RFQ not found", nil)
	case errors.Is(err, queries.ErrRFQAccess):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load RFQ", nil)
	}
}

func abortRFQCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRFQNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "RFQ not found", nil)
	case errors.Is(err, commands.ErrEntryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "RFQ is not in your inbox", nil)
	case errors.Is(err, commands.ErrRFQClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, "RFQ is closed", nil)
	case errors.Is(err, commands.ErrDuplicateResponse):
		httperr.AbortWithError(c, http.StatusConflict, err, "Quote already submitted", nil)
	case errors.Is(err, commands.ErrNotVisibleYet):
		httperr.AbortWithError(c, http.StatusForbidden, err, "RFQ is not visible to you yet", nil)
	case errors.Is(err, commands.ErrEntryExpired):
		httperr.AbortWithError(c, http.StatusGone, err, "RFQ window expired", nil)
	case errors.Is(err, commands.ErrQuotaExhausted):
		httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Monthly quote limit reached", nil)
	case errors.Is(err, commands.ErrRFQNotDistributable):
		httperr.AbortWithError(c, http.StatusConflict, err, "RFQ cannot be distributed", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Request failed", nil)
	}
}
