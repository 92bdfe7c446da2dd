package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/shopcraft/storefront/internal/catalog/app"
	catalogdomain "github.com/shopcraft/storefront/internal/catalog/domain"
	"github.com/shopcraft/storefront/pkg/money"
)

type CatalogHandler struct {
	svc *catalogapp.Service
}

func NewCatalogHandler(svc *catalogapp.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

type productRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"min=0"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Featured    bool   `json:"featured"`
	Stock       *int32 `json:"stock"`
}

type productUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
	Featured    *bool   `json:"featured"`
	Stock       *int32  `json:"stock"`
}

type productResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Price        int64     `json:"price"`
	DisplayPrice string    `json:"display_price"`
	Category     string    `json:"category,omitempty"`
	Image        string    `json:"image,omitempty"`
	Featured     bool      `json:"featured"`
	Stock        *int32    `json:"stock,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toProductResponse(p catalogdomain.Product) productResponse {
	return productResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		DisplayPrice: money.Format(p.Price),
		Category:     p.Category,
		Image:        p.Image,
		Featured:     p.Featured,
		Stock:        p.Stock,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponses(ps []catalogdomain.Product) []productResponse {
	out := make([]productResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductResponse(p))
	}
	return out
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, catalogapp.ErrInvalidInput)
		return
	}

	p, err := h.svc.CreateProduct(c.Request.Context(), catalogdomain.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Featured:    req.Featured,
		Stock:       req.Stock,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, toProductResponse(p))
}

func (h *CatalogHandler) Get(c *gin.Context) {
	p, err := h.svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toProductResponse(p))
}

func (h *CatalogHandler) Update(c *gin.Context) {
	var req productUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, catalogapp.ErrInvalidInput)
		return
	}

	p, err := h.svc.UpdateProduct(c.Request.Context(), c.Param("id"), catalogdomain.Update{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Featured:    req.Featured,
		Stock:       req.Stock,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toProductResponse(p))
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *CatalogHandler) List(c *gin.Context) {
	ps, err := h.svc.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toProductResponses(ps))
}

func (h *CatalogHandler) Featured(c *gin.Context) {
	ps, err := h.svc.FeaturedProducts(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toProductResponses(ps))
}
