package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawfessional/store-api/internal/handlers"
	"github.com/pawfessional/store-api/internal/middleware"
	"github.com/pawfessional/store-api/internal/models"
	"github.com/rs/zerolog"
)

func SetupRouter(h *handlers.Handlers, logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		v1.POST("/register", h.Register)
		v1.POST("/login", h.Login)

		// --- Public Catalog Routes ---
		v1.GET("/products", h.GetProducts)
		v1.GET("/products/:id", h.GetProduct)

		// --- Protected Routes (Login Required) ---
		auth := v1.Group("/")
		auth.Use(middleware.AuthMiddleware())
		{
			// Profile / pickup information
			auth.GET("/profile", h.GetMyProfile)
			auth.PUT("/profile", h.UpdateMyProfile)

			// Cart
			auth.GET("/cart", h.GetCart)
			auth.POST("/cart/items", h.AddToCart)
			auth.PATCH("/cart/items/:id/increase", h.IncreaseQuantity)
			auth.PATCH("/cart/items/:id/decrease", h.DecreaseQuantity)
			auth.DELETE("/cart/items/:id", h.RemoveFromCart)
			auth.POST("/cart/items/delete", h.DeleteSelected)
			auth.POST("/cart/subtotal", h.CartSubtotal)

			// Orders
			auth.POST("/orders/checkout", h.Checkout)
			auth.GET("/orders", h.GetMyOrders)
			auth.POST("/orders/:id/cancel", h.CancelOrder)

			// Appointments
			auth.POST("/appointments", h.BookAppointment)
			auth.GET("/appointments", h.GetMyAppointments)
			auth.POST("/appointments/:id/cancel", h.CancelAppointment)
		}

		// --- Staff-Only Routes (clinic back office) ---
		staff := v1.Group("/staff")
		staff.Use(middleware.AuthMiddleware())
		staff.Use(middleware.StaffMiddleware(h.DB))
		{
			staff.GET("/orders/pending", h.GetPendingOrders)
			staff.PATCH("/orders/:id/complete", h.CompleteOrder)

			staff.GET("/appointments/pending", h.GetPendingAppointments)
			staff.PATCH("/appointments/:id/approve", h.ReviewAppointment(models.AppointmentStatusApproved))
			staff.PATCH("/appointments/:id/reject", h.ReviewAppointment(models.AppointmentStatusRejected))
		}
	}

	return router
}
