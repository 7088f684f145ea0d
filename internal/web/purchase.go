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
)

// Rejection texts shown on the purchase form. The wording is part of the
// page contract and must not drift.
const (
	msgPastDate   = "You cannot select a past date!"
	msgSundayDate = "You cannot select Sunday!"
)

// PurchaseHandlers serves the order form, submission, and owner-scoped
// order listing.
type PurchaseHandlers struct {
	orders ordersports.Service
	logger *slog.Logger
	now    func() time.Time
}

// PurchaseOption configures a PurchaseHandlers.
type PurchaseOption func(*PurchaseHandlers)

// WithPurchaseClock overrides the wall clock. Used by tests to pin the
// minimum selectable date.
func WithPurchaseClock(now func() time.Time) PurchaseOption {
	return func(h *PurchaseHandlers) { h.now = now }
}

func NewPurchaseHandlers(orders ordersports.Service, logger *slog.Logger, opts ...PurchaseOption) *PurchaseHandlers {
	h := &PurchaseHandlers{orders: orders, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type purchaseForm struct {
	Date     string `form:"date"`
	Time     string `form:"time"`
	Location string `form:"location"`
	Product  string `form:"product"`
	Quantity int32  `form:"quantity"`
	Message  string `form:"message"`
}

func (h *PurchaseHandlers) ShowForm(c *gin.Context) {
	h.renderForm(c, purchaseForm{Quantity: 1}, "")
}

func (h *PurchaseHandlers) Submit(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var form purchaseForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, form, "Please fill in every field.")
		return
	}

	order, err := h.orders.Submit(c.Request.Context(), ident.Key(), ident.Email, ordersports.Submission{
		Date:     form.Date,
		Time:     form.Time,
		Location: form.Location,
		Product:  form.Product,
		Quantity: form.Quantity,
		Message:  form.Message,
	})
	if err != nil {
		if errors.Is(err, application.ErrInvalidInput) {
			h.renderForm(c, form, rejectionMessage(err))
			return
		}
		if h.logger != nil {
			h.logger.Error("submitting order", slog.String("error", err.Error()))
		}
		c.HTML(http.StatusInternalServerError, "error.tmpl", baseData(c, "Error", gin.H{
			"Heading": "Something went wrong",
			"Detail":  "Your order could not be saved. Please try again.",
		}))
		return
	}

	c.HTML(http.StatusOK, "purchase_confirmed.tmpl", baseData(c, "Order Confirmed", gin.H{
		"Reference": order.Reference(),
		"Order":     newOrderView(order),
	}))
}

func (h *PurchaseHandlers) MyOrders(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	orders, err := h.orders.ListByOwner(c.Request.Context(), ident.Key())
	if err != nil {
		if h.logger != nil {
			h.logger.Error("listing orders", slog.String("error", err.Error()))
		}
		c.HTML(http.StatusInternalServerError, "error.tmpl", baseData(c, "Error", gin.H{
			"Heading": "Something went wrong",
			"Detail":  "Your orders could not be loaded. Please try again.",
		}))
		return
	}
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	c.HTML(http.StatusOK, "myorders.tmpl", baseData(c, "My Orders", gin.H{
		"Orders": views,
	}))
}

func (h *PurchaseHandlers) renderForm(c *gin.Context, form purchaseForm, errMsg string) {
	if form.Quantity == 0 {
		form.Quantity = 1
	}
	c.HTML(http.StatusOK, "purchase.tmpl", baseData(c, "Purchase", gin.H{
		"Form":      form,
		"Error":     errMsg,
		"MinDate":   h.now().Format(application.DateLayout),
		"TimeSlots": domain.TimeSlots(),
		"Locations": domain.Locations(),
		"Products":  domain.Products(),
	}))
}

// orderView is the template-facing shape of an order. Dates are
// preformatted so templates stay logic-free.
type orderView struct {
	Reference string
	Date      string
	Time      string
	Location  string
	Product   string
	Quantity  int32
	Message   string
}

func newOrderView(o *domain.Order) orderView {
	return orderView{
		Reference: o.Reference(),
		Date:      o.Date.Format(application.DateLayout),
		Time:      string(o.Time),
		Location:  string(o.Location),
		Product:   string(o.Product),
		Quantity:  o.Quantity,
		Message:   o.Message,
	}
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrPastDate):
		return msgPastDate
	case errors.Is(err, domain.ErrSundayDate):
		return msgSundayDate
	case errors.Is(err, application.ErrUnparsableDate):
		return "Please pick a valid delivery date."
	case errors.Is(err, domain.ErrInvalidTimeSlot):
		return "Please pick one of the offered time slots."
	case errors.Is(err, domain.ErrInvalidLocation):
		return "Please pick one of the delivery locations."
	case errors.Is(err, domain.ErrInvalidProduct):
		return "Please pick one of the listed products."
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "Please pick a quantity of at least one."
	default:
		return "Your order could not be accepted."
	}
}
