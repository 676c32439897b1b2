package Controllers_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/waykaburger/station-app/controllers"
	"github.com/waykaburger/station-app/models"
	"github.com/waykaburger/station-app/store"
	"github.com/waykaburger/station-app/utils"
)

func setupTestStoreForNotifications() *store.Store {
	db, err := gorm.Open(sqlite.Open("file:notifsctrl?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.Order{}, &models.OrderItem{}, &models.PaymentRecord{},
		&models.Notification{}, &models.DailySales{}, &models.DailySalesItem{},
		&models.DailySalesDetail{},
	)
	if err != nil {
		panic(err)
	}
	wipe := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	wipe.Delete(&models.OrderItem{})
	wipe.Delete(&models.Notification{})
	wipe.Delete(&models.DailySalesItem{})
	wipe.Delete(&models.DailySalesDetail{})
	wipe.Delete(&models.DailySales{})
	wipe.Delete(&models.Order{})
	return store.NewWithSequence(db, store.NewSequence(1))
}

func setupNotificationRouter(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	notifCtrl := controllers.NewNotificationController(st)
	router.GET("/notifications", notifCtrl.GetNotifications)
	router.GET("/notifications/unread-count", notifCtrl.GetUnreadCount)
	router.POST("/notifications/:notif_id/read", notifCtrl.MarkAsRead)
	return router
}

func seedNotificationOrder(t *testing.T, st *store.Store) {
	t.Helper()
	zero := 0.0
	_, _, err := st.CreateOrder(store.OrderDraft{
		Items: []models.OrderItem{
			{ItemID: "1", Name: "Llokallita", Price: 13, Category: models.CategoryBurger, Quantity: 1},
		},
		PaymentMethod:  models.PaymentCash,
		OrderType:      models.OrderTypeDineIn,
		InitialPayment: &zero,
	})
	assert.NoError(t, err)
}

func TestGetNotificationsByStation(t *testing.T) {
	utils.InitLogger()
	st := setupTestStoreForNotifications()
	router := setupNotificationRouter(st)
	seedNotificationOrder(t, st)

	w := postJSON(router, "GET", "/notifications?station=kitchen", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "new-order", first["type"])
	assert.Equal(t, "kitchen", first["target_station"])
	assert.Equal(t, false, first["read"])
}

func TestUnreadCountAndMarkAsRead(t *testing.T) {
	utils.InitLogger()
	st := setupTestStoreForNotifications()
	router := setupNotificationRouter(st)
	seedNotificationOrder(t, st)

	w := postJSON(router, "GET", "/notifications/unread-count?station=grill", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 1.0, data["unread"])

	// find the grill notification id and mark it read
	w = postJSON(router, "GET", "/notifications?station=grill", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	feed := resp["data"].([]interface{})
	assert.Len(t, feed, 1)
	notifID := int(feed[0].(map[string]interface{})["id"].(float64))

	w = postJSON(router, "POST", "/notifications/"+strconv.Itoa(notifID)+"/read", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "GET", "/notifications/unread-count?station=grill", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, 0.0, data["unread"])

	// marking the same one again stays 200
	w = postJSON(router, "POST", "/notifications/"+strconv.Itoa(notifID)+"/read", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnreadCountRequiresStation(t *testing.T) {
	utils.InitLogger()
	st := setupTestStoreForNotifications()
	router := setupNotificationRouter(st)

	w := postJSON(router, "GET", "/notifications/unread-count", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkAsReadUnknownID(t *testing.T) {
	utils.InitLogger()
	st := setupTestStoreForNotifications()
	router := setupNotificationRouter(st)

	w := postJSON(router, "POST", "/notifications/99999/read", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = postJSON(router, "POST", "/notifications/abc/read", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
