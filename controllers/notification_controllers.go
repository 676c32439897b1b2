package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/waykaburger/station-app/store"
	"github.com/waykaburger/station-app/utils"
)

type NotificationController struct {
	Store *store.Store
}

func NewNotificationController(st *store.Store) *NotificationController {
	return &NotificationController{Store: st}
}

// GetNotifications -> feed newest-first; ?station= filters by target, and the
// caller's station identity is used when the query param is absent.
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	station := c.Query("station")
	if station == "" {
		if st, ok := c.Get("station"); ok {
			station = st.(string)
		}
	}

	notifs, err := nc.Store.ListNotifications(station)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notifications", notifs)
}

// GetUnreadCount -> badge counter for one station
func (nc *NotificationController) GetUnreadCount(c *gin.Context) {
	station := c.Query("station")
	if station == "" {
		if st, ok := c.Get("station"); ok {
			station = st.(string)
		}
	}
	if station == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("station is required"))
		return
	}

	count, err := nc.Store.UnreadCount(station)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Unread count", gin.H{"station": station, "unread": count})
}

// MarkAsRead -> flip the read flag; repeating the call is harmless
func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	idStr := c.Param("notif_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid notification id %q", idStr))
		return
	}

	if err := nc.Store.MarkNotificationRead(uint(id)); err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification marked as read", gin.H{"notif_id": id})
}
