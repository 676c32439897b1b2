package router

import (
	"github.com/gin-gonic/gin"

	"github.com/waykaburger/station-app/controllers"
	"github.com/waykaburger/station-app/middlewares"
	"github.com/waykaburger/station-app/store"
)

func SetupRouter(st *store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.StationContext())

	orderCtrl := controllers.NewOrderController(st)
	notificationCtrl := controllers.NewNotificationController(st)
	salesCtrl := controllers.NewSalesController(st)
	menuCtrl := controllers.NewMenuController(st.DB())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// MENU (read-only catalog mirror)
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/by-category", menuCtrl.GetMenusByCategory)

	// ORDERS
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.PATCH("/orders/:order_id", orderCtrl.UpdateOrder)
	r.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	// Station actions
	r.POST("/orders/:order_id/start", orderCtrl.StartStation)
	r.POST("/orders/:order_id/finish", orderCtrl.FinishStation)
	r.POST("/orders/:order_id/deliver", orderCtrl.DeliverOrder)
	r.POST("/orders/:order_id/payments", orderCtrl.AddPayment)

	// NOTIFICATIONS
	r.GET("/notifications", notificationCtrl.GetNotifications)
	r.GET("/notifications/unread-count", notificationCtrl.GetUnreadCount)
	r.POST("/notifications/:notif_id/read", notificationCtrl.MarkAsRead)

	// DAILY SALES; open/close/reset are low-volume admin actions
	r.GET("/sales", salesCtrl.GetSales)
	salesAdmin := r.Group("/sales")
	salesAdmin.Use(middlewares.NewStrictRateLimiter())
	{
		salesAdmin.POST("/close", salesCtrl.CloseSales)
		salesAdmin.POST("/open", salesCtrl.OpenSales)
		salesAdmin.POST("/reset", salesCtrl.ResetSales)
	}

	// Station websocket feed
	r.GET("/ws/:station", controllers.StationFeedHandler)

	return r
}
