package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/waykaburger/station-app/hub"
	"github.com/waykaburger/station-app/models"
	"github.com/waykaburger/station-app/store"
	"github.com/waykaburger/station-app/utils"
)

type OrderController struct {
	Store *store.Store
}

func NewOrderController(st *store.Store) *OrderController {
	return &OrderController{Store: st}
}

// ItemReq is one drafted line; the client sends the catalog snapshot it built
// the ticket from.
type ItemReq struct {
	ItemID         string                `json:"item_id" binding:"required"`
	Name           string                `json:"name" binding:"required"`
	Price          float64               `json:"price"`
	Category       string                `json:"category" binding:"required"`
	CookingTime    *int                  `json:"cooking_time"`
	Image          *string               `json:"image"`
	Quantity       int                   `json:"quantity"`
	Notes          string                `json:"notes"`
	Customizations models.Customizations `json:"customizations"`
}

func (ir *ItemReq) toLine() models.OrderItem {
	return models.OrderItem{
		ItemID:         ir.ItemID,
		Name:           ir.Name,
		Price:          ir.Price,
		Category:       ir.Category,
		CookingTime:    ir.CookingTime,
		Image:          ir.Image,
		Quantity:       ir.Quantity,
		Notes:          ir.Notes,
		Customizations: ir.Customizations,
	}
}

// GetAllOrders -> shared order list, newest first
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Store.ListOrders()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail of one order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := orderParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Store.GetOrder(id)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// CreateOrder -> cashier submits a drafted ticket
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type reqBody struct {
		Items          []ItemReq `json:"items" binding:"required"`
		PaymentMethod  string    `json:"payment_method" binding:"required"`
		OrderType      string    `json:"order_type" binding:"required"`
		IsMemberSale   bool      `json:"is_member_sale"`
		MemberName     *string   `json:"member_name"`
		Notes          string    `json:"notes"`
		InitialPayment *float64  `json:"initial_payment"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	draft := store.OrderDraft{
		PaymentMethod:  body.PaymentMethod,
		OrderType:      body.OrderType,
		IsMemberSale:   body.IsMemberSale,
		MemberName:     body.MemberName,
		Notes:          body.Notes,
		InitialPayment: body.InitialPayment,
	}
	for _, item := range body.Items {
		draft.Items = append(draft.Items, item.toLine())
	}

	order, notifs, err := oc.Store.CreateOrder(draft)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}

	utils.InfoLogger.Printf("Order #%d created, total %.2f Bs., status %s", order.OrderNumber, order.Total, order.Status)

	hub.BroadcastOrderUpdate(*order)
	for _, n := range notifs {
		hub.PushNotification(n)
	}
	if sales, err := oc.Store.GetSales(""); err == nil {
		hub.BroadcastSalesUpdate(*sales)
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// UpdateOrder -> patch notes/classification, or replace the item list while
// the order is still pending (an empty list cancels it)
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := orderParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	type reqBody struct {
		Notes        *string    `json:"notes"`
		OrderType    *string    `json:"order_type"`
		IsMemberSale *bool      `json:"is_member_sale"`
		MemberName   *string    `json:"member_name"`
		Items        *[]ItemReq `json:"items"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Items != nil {
		items := make([]models.OrderItem, 0, len(*body.Items))
		for _, item := range *body.Items {
			items = append(items, item.toLine())
		}
		order, cancelled, err := oc.Store.EditOrderItems(id, items)
		if err != nil {
			utils.RespondError(c, statusFor(err), err)
			return
		}
		if cancelled {
			hub.BroadcastOrderDeleted(id)
			utils.RespondJSON(c, http.StatusOK, "Order cancelled (empty item list)", gin.H{"order_id": id, "cancelled": true})
			return
		}
		hub.BroadcastOrderUpdate(*order)
	}

	if body.Notes != nil || body.OrderType != nil || body.IsMemberSale != nil || body.MemberName != nil {
		order, err := oc.Store.UpdateOrderInfo(id, store.OrderInfo{
			Notes:        body.Notes,
			OrderType:    body.OrderType,
			IsMemberSale: body.IsMemberSale,
			MemberName:   body.MemberName,
		})
		if err != nil {
			utils.RespondError(c, statusFor(err), err)
			return
		}
		hub.BroadcastOrderUpdate(*order)
	}

	order, err := oc.Store.GetOrder(id)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

// DeleteOrder -> cashier cancels a pending order
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := orderParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.Store.CancelOrder(id); err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	hub.BroadcastOrderDeleted(id)
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": id})
}

// StartStation -> kitchen/grill begins work on the order
func (oc *OrderController) StartStation(c *gin.Context) {
	oc.stationAction(c, oc.Store.StartStation)
}

// FinishStation -> kitchen/grill finishes its part. Kitchen is rejected until
// grill is done; that ordering is enforced by the lifecycle engine.
func (oc *OrderController) FinishStation(c *gin.Context) {
	oc.stationAction(c, oc.Store.FinishStation)
}

func (oc *OrderController) stationAction(c *gin.Context, action func(uint, string) (*models.Order, []models.Notification, error)) {
	id, err := orderParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	type reqBody struct {
		Station string `json:"station"`
	}
	var body reqBody
	_ = c.ShouldBindJSON(&body)
	if body.Station == "" {
		// fall back to the station identity of the caller
		if st, ok := c.Get("station"); ok {
			body.Station = st.(string)
		}
	}
	if body.Station == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("station is required"))
		return
	}

	order, notifs, err := action(id, body.Station)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}

	hub.BroadcastOrderUpdate(*order)
	for _, n := range notifs {
		hub.PushNotification(n)
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

// DeliverOrder -> counter hands the order over; requires ready-for-pickup and
// a settled balance
func (oc *OrderController) DeliverOrder(c *gin.Context) {
	id, err := orderParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Store.DeliverOrder(id)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}

	utils.InfoLogger.Printf("Order #%d delivered", order.OrderNumber)
	hub.BroadcastOrderUpdate(*order)
	utils.RespondJSON(c, http.StatusOK, "Order completed", order)
}

// AddPayment -> append one cash/qr payment to the ledger
func (oc *OrderController) AddPayment(c *gin.Context) {
	id, err := orderParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	type reqBody struct {
		Method string  `json:"method" binding:"required"`
		Amount float64 `json:"amount" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Store.AddPayment(id, body.Method, body.Amount)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}

	utils.InfoLogger.Printf("Payment of %.2f Bs. (%s) added to order #%d, pending %.2f",
		body.Amount, body.Method, order.OrderNumber, order.AmountPending)
	hub.BroadcastOrderUpdate(*order)
	utils.RespondJSON(c, http.StatusOK, "Payment registered", order)
}

func orderParam(c *gin.Context) (uint, error) {
	idStr := c.Param("order_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid order id %q", idStr)
	}
	return uint(id), nil
}
