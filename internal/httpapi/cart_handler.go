package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	cartapp "github.com/shopcraft/storefront/internal/cart/app"
	cartdomain "github.com/shopcraft/storefront/internal/cart/domain"
	orderapp "github.com/shopcraft/storefront/internal/order/app"
	"github.com/shopcraft/storefront/pkg/money"
)

// CartMirror is the server-side cart document, exposed for explicit
// backup/restore. The session store stays authoritative for checkout.
type CartMirror interface {
	Save(ctx context.Context, userID string, items []cartdomain.LineItem) error
	Load(ctx context.Context, userID string) ([]cartdomain.LineItem, error)
}

type CartHandler struct {
	svc    *cartapp.Service
	mirror CartMirror
}

func NewCartHandler(svc *cartapp.Service, mirror CartMirror) *CartHandler {
	return &CartHandler{svc: svc, mirror: mirror}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Title     string `json:"title"`
	Price     int64  `json:"price" binding:"min=0"`
	Quantity  int32  `json:"quantity"`
	Category  string `json:"category"`
	Image     string `json:"image"`
}

type setQuantityRequest struct {
	Quantity int32 `json:"quantity"`
}

type cartResponse struct {
	Items        []cartdomain.LineItem `json:"items"`
	Total        int64                 `json:"total"`
	TotalDisplay string                `json:"total_display"`
	ItemCount    int                   `json:"item_count"`
}

func toCartResponse(cart cartdomain.Cart) cartResponse {
	items := cart.Items
	if items == nil {
		items = []cartdomain.LineItem{}
	}
	return cartResponse{
		Items:        items,
		Total:        cart.Total(),
		TotalDisplay: money.Format(cart.Total()),
		ItemCount:    cart.ItemCount(),
	}
}

func (h *CartHandler) requireSession(c *gin.Context) (string, bool) {
	sid := sessionID(c)
	if sid == "" {
		respondErr(c, orderapp.ErrNotAuthenticated)
		return "", false
	}
	return sid, true
}

func (h *CartHandler) Get(c *gin.Context) {
	sid, ok := h.requireSession(c)
	if !ok {
		return
	}

	cart, err := h.svc.Load(c.Request.Context(), sid)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toCartResponse(cart))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	sid, ok := h.requireSession(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, cartapp.ErrInvalidInput)
		return
	}

	cart, err := h.svc.AddItem(c.Request.Context(), sid, cartdomain.LineItem{
		ProductID: req.ProductID,
		Title:     req.Title,
		UnitPrice: req.Price,
		Quantity:  req.Quantity,
		Category:  req.Category,
		Image:     req.Image,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toCartResponse(cart))
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	sid, ok := h.requireSession(c)
	if !ok {
		return
	}

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, cartapp.ErrInvalidInput)
		return
	}

	cart, err := h.svc.SetQuantity(c.Request.Context(), sid, c.Param("productID"), req.Quantity)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toCartResponse(cart))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	sid, ok := h.requireSession(c)
	if !ok {
		return
	}

	cart, err := h.svc.RemoveItem(c.Request.Context(), sid, c.Param("productID"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toCartResponse(cart))
}

func (h *CartHandler) Clear(c *gin.Context) {
	sid, ok := h.requireSession(c)
	if !ok {
		return
	}

	cart, err := h.svc.Clear(c.Request.Context(), sid)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toCartResponse(cart))
}

// Backup copies the session cart into the server-side mirror so a user can
// pick it up from another device.
func (h *CartHandler) Backup(c *gin.Context) {
	uid := userID(c)
	if uid == "" {
		respondErr(c, orderapp.ErrNotAuthenticated)
		return
	}
	sid, ok := h.requireSession(c)
	if !ok {
		return
	}

	cart, err := h.svc.Load(c.Request.Context(), sid)
	if err != nil {
		respondErr(c, err)
		return
	}
	if err := h.mirror.Save(c.Request.Context(), uid, cart.Items); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toCartResponse(cart))
}

// Restore replaces the session cart with the server-side mirror's contents.
func (h *CartHandler) Restore(c *gin.Context) {
	uid := userID(c)
	if uid == "" {
		respondErr(c, orderapp.ErrNotAuthenticated)
		return
	}
	sid, ok := h.requireSession(c)
	if !ok {
		return
	}

	items, err := h.mirror.Load(c.Request.Context(), uid)
	if err != nil {
		respondErr(c, err)
		return
	}

	cart, err := h.svc.Clear(c.Request.Context(), sid)
	if err != nil {
		respondErr(c, err)
		return
	}
	for _, it := range items {
		cart, err = h.svc.AddItem(c.Request.Context(), sid, it)
		if err != nil {
			respondErr(c, err)
			return
		}
	}
	respond(c, http.StatusOK, toCartResponse(cart))
}
