package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/waykaburger/station-app/hub"
	"github.com/waykaburger/station-app/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StationFeedHandler -> websocket event feed for one station
func StationFeedHandler(c *gin.Context) {
	station := c.Param("station")
	switch station {
	case models.StationKitchen, models.StationGrill, models.StationCashier:
	default:
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	hub.RegisterClient(ws, station)

	// Drain the connection until the client goes away.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	hub.UnregisterClient(ws)
}
