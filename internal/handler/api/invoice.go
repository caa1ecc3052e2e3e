package api

import (
	"errors"
	"net/http"

	reqdto "tournament-billing/internal/handler/dto/request"
	resdto "tournament-billing/internal/handler/dto/response"
	"tournament-billing/internal/handler/middleware"
	"tournament-billing/internal/infra/billing"
	"tournament-billing/internal/usecase/commands"
	"tournament-billing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	invoiceCommands commands.InvoiceCommands
	splitCommands   commands.SplitCommands
	invoiceQueries  queries.InvoiceQueries
}

func NewInvoiceHandler(
	invoiceCommands commands.InvoiceCommands,
	splitCommands commands.SplitCommands,
	invoiceQueries queries.InvoiceQueries,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceCommands: invoiceCommands,
		splitCommands:   splitCommands,
		invoiceQueries:  invoiceQueries,
	}
}

// @Summary Create invoice
// @Description Create and publish an invoice for an event roster
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateInvoiceRequest true "Invoice request"
// @Success 201 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateInvoiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.invoiceCommands.CreateInvoice(c.Request.Context(), act, req, idempotencyKey)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromInvoiceResult(result))
}

// @Summary Create split invoices
// @Description Create a program-billed invoice and an independent invoice from one roster
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateSplitInvoiceRequest true "Split invoice request"
// @Success 201 {object} resdto.SplitInvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /invoices/split [post]
func (h *InvoiceHandler) CreateSplitInvoice(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateSplitInvoiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.splitCommands.CreateSplitInvoice(c.Request.Context(), act, req, idempotencyKey)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSplitResult(result))
}

// @Summary Cancel invoice
// @Description Cancel an invoice remotely when possible, falling back to a local-only cancel
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param request body reqdto.CancelInvoiceRequest false "Cancel reason"
// @Success 200 {object} resdto.CancelInvoiceResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /invoices/{id}/cancel [post]
func (h *InvoiceHandler) CancelInvoice(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CancelInvoiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.invoiceCommands.CancelInvoice(c.Request.Context(), act, c.Param("id"), req.Reason)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary Recreate invoice
// @Description Cancel an invoice and issue its successor with an updated roster
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param id path string true "Invoice ID"
// @Param request body reqdto.RecreateInvoiceRequest true "Recreate request"
// @Success 201 {object} resdto.RecreateInvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /invoices/{id}/recreate [post]
func (h *InvoiceHandler) RecreateInvoice(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.RecreateInvoiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.invoiceCommands.RecreateInvoice(c.Request.Context(), act, c.Param("id"), req, idempotencyKey)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRecreateResult(result))
}

// @Summary Record payment
// @Description Record an out-of-band payment (check, cash) against an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param id path string true "Invoice ID"
// @Param request body reqdto.RecordPaymentRequest true "Payment request"
// @Success 201 {object} resdto.PaymentRecordedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /invoices/{id}/payments [post]
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.RecordPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.invoiceCommands.RecordPayment(c.Request.Context(), act, c.Param("id"), req, idempotencyKey)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPaymentResult(result))
}

// @Summary Get invoice status
// @Description Get an invoice with its live provider status and payment list
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceStatusResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	view, err := h.invoiceQueries.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceStatusView(view))
}

// @Summary List event invoices
// @Description List all invoices issued for an event
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {array} resdto.InvoiceListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /events/{id}/invoices [get]
func (h *InvoiceHandler) ListEventInvoices(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	items, err := h.invoiceQueries.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.InvoiceListItemResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromInvoiceListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

func (h *InvoiceHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Permission denied",
		})
	case errors.Is(err, commands.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
	case errors.Is(err, commands.ErrInvoiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Invoice not found",
		})
	case errors.Is(err, commands.ErrInvalidFeeSchedule):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Event fee schedule is invalid",
		})
	case errors.Is(err, commands.ErrEmptyRoster):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "No active participants to invoice",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	case errors.Is(err, commands.ErrInvoiceAlreadyPaid):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Invoice is already paid",
		})
	case errors.Is(err, commands.ErrInvoiceNotRecreatable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Invoice is not in a recreatable status",
		})
	case errors.Is(err, commands.ErrInvoiceNotPayable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Invoice does not accept payments",
		})
	case errors.Is(err, commands.ErrTotalMismatch):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Computed fee total could not be reconciled",
		})
	case errors.Is(err, commands.ErrDraftOrphaned):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Invoice draft was created but could not be published",
		})
	case billing.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Billing provider reported a conflict",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errors.New("idempotency key required")
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
