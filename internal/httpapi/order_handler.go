package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	orderapp "github.com/shopcraft/storefront/internal/order/app"
	orderdomain "github.com/shopcraft/storefront/internal/order/domain"
	"github.com/shopcraft/storefront/pkg/money"
)

type OrderHandler struct {
	svc *orderapp.Service
}

func NewOrderHandler(svc *orderapp.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type checkoutRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
	Notes           string `json:"notes"`
	IdempotencyKey  string `json:"idempotency_key"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

type trackingRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
}

type orderResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	Items           []orderdomain.Item `json:"items"`
	Status          string             `json:"status"`
	TotalAmount     int64              `json:"total_amount"`
	TotalDisplay    string             `json:"total_display"`
	ShippingAddress string             `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
	Notes           string             `json:"notes,omitempty"`
	TrackingNumber  string             `json:"tracking_number,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func toOrderResponse(o orderdomain.Order) orderResponse {
	return orderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           o.Items,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		TotalDisplay:    money.Format(o.TotalAmount),
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		Notes:           o.Notes,
		TrackingNumber:  o.TrackingNumber,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toOrderResponses(orders []orderdomain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, orderapp.ErrInvalidInput)
		return
	}

	order, err := h.svc.PlaceOrder(c.Request.Context(), orderdomain.PlaceOrderRequest{
		UserID:          userID(c),
		SessionID:       sessionID(c),
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
		IdempotencyKey:  req.IdempotencyKey,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.svc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toOrderResponse(order))
}

// ListMine is the signed-in user's order history, newest first.
func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.svc.ListUserOrders(c.Request.Context(), userID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toOrderResponses(orders))
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.svc.ListAllOrders(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toOrderResponses(orders))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, orderapp.ErrInvalidInput)
		return
	}

	id := c.Param("id")
	if err := h.svc.UpdateStatus(c.Request.Context(), id, orderdomain.Status(req.Status)); err != nil {
		respondErr(c, err)
		return
	}

	order, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) SetTracking(c *gin.Context) {
	var req trackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, orderapp.ErrInvalidInput)
		return
	}

	id := c.Param("id")
	if err := h.svc.SetTracking(c.Request.Context(), id, req.TrackingNumber); err != nil {
		respondErr(c, err)
		return
	}

	order, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": true})
}
