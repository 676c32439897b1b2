// Package hub pushes store changes to connected station clients over
// websockets. Polling the HTTP API stays the contract; this is the optional
// low-latency channel on top of it.
package hub

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/waykaburger/station-app/models"
)

// Event types
const (
	EventOrderUpdate  = "order_update"
	EventOrderDeleted = "order_deleted"
	EventNotification = "notification"
	EventSalesUpdate  = "sales_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// StationHub tracks connected clients and which station each one sits at.
type StationHub struct {
	clients map[*websocket.Conn]string // conn -> station
	mutex   sync.Mutex
}

var stationHub = StationHub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection for a station.
func RegisterClient(conn *websocket.Conn, station string) {
	stationHub.mutex.Lock()
	defer stationHub.mutex.Unlock()
	stationHub.clients[conn] = station
}

// UnregisterClient drops a connection.
func UnregisterClient(conn *websocket.Conn) {
	stationHub.mutex.Lock()
	defer stationHub.mutex.Unlock()
	delete(stationHub.clients, conn)
	conn.Close()
}

// BroadcastOrderUpdate fans an order change out to every station; all three
// screens render from the shared order list.
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	}, "")
}

// BroadcastOrderDeleted tells clients to drop a cancelled/cleaned-up order.
func BroadcastOrderDeleted(orderID uint) {
	broadcast(Message{
		Event: EventOrderDeleted,
		Data:  map[string]interface{}{"order_id": orderID},
	}, "")
}

// PushNotification delivers a feed entry only to its target station.
func PushNotification(n models.Notification) {
	broadcast(Message{
		Event: EventNotification,
		Data:  n,
	}, n.TargetStation)
}

// BroadcastSalesUpdate signals the cashier dashboard to refetch the aggregate.
func BroadcastSalesUpdate(sales models.DailySales) {
	broadcast(Message{
		Event: EventSalesUpdate,
		Data:  sales,
	}, models.StationCashier)
}

// broadcast sends to every client, or only to one station when target is set.
func broadcast(msg Message, target string) {
	stationHub.mutex.Lock()
	defer stationHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn, station := range stationHub.clients {
		if target != "" && station != target {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to %s client: %v", station, err)
			continue
		}
	}
}
