package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Catalog *CatalogHandler
	Cart    *CartHandler
	Orders  *OrderHandler
	Users   *UserHandler
}

func NewRouter(h Handlers, log *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(AccessLog(log))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", h.Catalog.List)
		v1.GET("/products/featured", h.Catalog.Featured)
		v1.GET("/products/:id", h.Catalog.Get)
		v1.POST("/products", h.Catalog.Create)
		v1.PUT("/products/:id", h.Catalog.Update)
		v1.DELETE("/products/:id", h.Catalog.Delete)

		v1.GET("/cart", h.Cart.Get)
		v1.POST("/cart/items", h.Cart.AddItem)
		v1.PUT("/cart/items/:productID", h.Cart.SetQuantity)
		v1.DELETE("/cart/items/:productID", h.Cart.RemoveItem)
		v1.DELETE("/cart", h.Cart.Clear)
		v1.POST("/cart/backup", h.Cart.Backup)
		v1.POST("/cart/restore", h.Cart.Restore)

		v1.POST("/checkout", h.Orders.Checkout)
		v1.GET("/orders", h.Orders.ListMine)
		v1.GET("/orders/:id", h.Orders.Get)
		v1.PATCH("/orders/:id/status", h.Orders.UpdateStatus)
		v1.PATCH("/orders/:id/tracking", h.Orders.SetTracking)
		v1.DELETE("/orders/:id", h.Orders.Delete)
		v1.GET("/admin/orders", h.Orders.ListAll)

		v1.POST("/profile", h.Users.Register)
		v1.GET("/profile", h.Users.Get)
		v1.PUT("/profile", h.Users.Update)
		v1.DELETE("/profile", h.Users.Delete)
	}

	return router
}
