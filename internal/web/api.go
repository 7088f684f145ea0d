package web

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/application"
	"github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/domain"
	ordersports "github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/ports"
	sharederrors "github.com/mohamedsham20017/ecommerce-website/internal/shared/errors"
)

// IdempotencyKeyHeader carries the client-chosen key for safe retries of
// order submission.
const IdempotencyKeyHeader = "Idempotency-Key"

// APIHandlers serves the JSON order endpoints under /api/v1.
type APIHandlers struct {
	orders      ordersports.Service
	idempotency ordersports.IdempotencyStore
	responder   *sharederrors.Responder
	logger      *slog.Logger
}

func NewAPIHandlers(orders ordersports.Service, idempotency ordersports.IdempotencyStore, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		orders:      orders,
		idempotency: idempotency,
		responder:   sharederrors.NewResponder(mapOrderError),
		logger:      logger,
	}
}

// RequireAuthJSON rejects anonymous API requests with a problem response
// instead of the browser redirect.
func (h *APIHandlers) RequireAuthJSON(c *gin.Context) {
	if _, ok := identityFrom(c); !ok {
		h.responder.Respond(c, sharederrors.ErrUnauthorized.WithDetail("a valid session is required"))
		c.Abort()
		return
	}
	c.Next()
}

type orderRequest struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Location string `json:"location" binding:"required"`
	Product  string `json:"product" binding:"required"`
	Quantity int32  `json:"quantity" binding:"required"`
	Message  string `json:"message"`
}

type orderResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	Owner     string `json:"owner"`
	Email     string `json:"email,omitempty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Product   string `json:"product"`
	Quantity  int32  `json:"quantity"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (h *APIHandlers) CreateOrder(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		h.responder.Respond(c, sharederrors.ErrUnauthorized.WithDetail("a valid session is required"))
		return
	}

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, "request body is not a valid order: "+err.Error())
		return
	}
	sub := ordersports.Submission{
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		Product:  req.Product,
		Quantity: req.Quantity,
		Message:  req.Message,
	}

	key := c.GetHeader(IdempotencyKeyHeader)
	if key == "" {
		order, err := h.orders.Submit(c.Request.Context(), ident.Key(), ident.Email, sub)
		if err != nil {
			h.responder.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toOrderResponse(order))
		return
	}

	hash, err := application.FingerprintSubmission(ident.Key(), sub)
	if err != nil {
		h.responder.RespondError(c, err)
		return
	}

	if stored, err := h.idempotency.Get(c.Request.Context(), key); err != nil {
		h.responder.RespondError(c, err)
		return
	} else if stored != nil {
		if stored.RequestHash != hash {
			h.responder.Respond(c, sharederrors.ErrConflict.
				WithDetail("idempotency key was already used with a different payload").
				WithExtension("idempotencyKey", key))
			return
		}
		order, err := h.orders.GetByID(c.Request.Context(), stored.OrderID)
		if err != nil {
			h.responder.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(order))
		return
	}

	order, err := h.orders.Submit(c.Request.Context(), ident.Key(), ident.Email, sub)
	if err != nil {
		h.responder.RespondError(c, err)
		return
	}
	if _, err := h.idempotency.Save(c.Request.Context(), ordersports.IdempotencyRecord{
		Key:         key,
		RequestHash: hash,
		OrderID:     order.ID,
	}); err != nil && !errors.Is(err, ordersports.ErrIdempotencyConflict) {
		// The order is already committed; a failed key write only costs
		// the retry safety of this one request.
		if h.logger != nil {
			h.logger.Warn("saving idempotency key", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *APIHandlers) ListOrders(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		h.responder.Respond(c, sharederrors.ErrUnauthorized.WithDetail("a valid session is required"))
		return
	}
	orders, err := h.orders.ListByOwner(c.Request.Context(), ident.Key())
	if err != nil {
		h.responder.RespondError(c, err)
		return
	}
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, gin.H{"orders": out})
}

func toOrderResponse(o *domain.Order) orderResponse {
	resp := orderResponse{
		ID:        o.ID,
		Reference: o.Reference(),
		Owner:     o.Owner,
		Email:     o.Email,
		Date:      o.Date.Format(application.DateLayout),
		Time:      string(o.Time),
		Location:  string(o.Location),
		Product:   string(o.Product),
		Quantity:  o.Quantity,
		Message:   o.Message,
	}
	if !o.CreatedAt.IsZero() {
		resp.CreatedAt = o.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func mapOrderError(err error) (sharederrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, application.ErrInvalidInput):
		return sharederrors.ErrUnprocessable.WithDetail(err.Error()), true
	case errors.Is(err, ordersports.ErrNotFound):
		return sharederrors.NewNotFoundProblem("order", ""), true
	case errors.Is(err, ordersports.ErrIdempotencyConflict):
		return sharederrors.ErrConflict.WithDetail(err.Error()), true
	default:
		return sharederrors.ProblemDetail{}, false
	}
}
