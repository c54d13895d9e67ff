package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
)

// Hub fan-out: setiap transisi stage yang sukses di-broadcast ke semua
// client yang terhubung (monitor produksi).
type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
	}
}

// Event adalah payload broadcast per transisi stage.
type Event struct {
	Type   string                 `json:"type"`
	Lokasi string                 `json:"lokasi"`
	Detail map[string]interface{} `json:"detail,omitempty"`
	Time   time.Time              `json:"time"`
}

// PublishStage marshals and queues a stage event. Blocks until the running
// hub picks it up, so callers fire it from a goroutine.
func (h *Hub) PublishStage(lokasi string, detail map[string]interface{}) {
	msg, err := json.Marshal(Event{
		Type:   "stage_event",
		Lokasi: lokasi,
		Detail: detail,
		Time:   time.Now(),
	})
	if err != nil {
		return
	}
	h.Broadcast <- msg
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New WS Client Connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
