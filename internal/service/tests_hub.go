package service

import (
	"encoding/json"
	"net/http"
	"time"

	"testcreator_backend/pkg/logger"
	"testcreator_backend/pkg/monitoring"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	hubWriteWait  = 10 * time.Second
	hubPongWait   = 60 * time.Second
	hubPingPeriod = (hubPongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// TestsEvent 目录变更事件，推送给所有订阅的客户端。
type TestsEvent struct {
	Type   string `json:"type"`
	TestID uint   `json:"testId,omitempty"`
}

type hubClient struct {
	conn *websocket.Conn
	send chan []byte
}

// TestsHub 向已连接客户端广播试卷目录变更（创建/删除）。
// 客户端集合只在 Run 循环内修改，无需加锁。
type TestsHub struct {
	clients    map[*hubClient]bool
	register   chan *hubClient
	unregister chan *hubClient
	broadcast  chan []byte
	done       chan struct{}
}

func NewTestsHub() *TestsHub {
	return &TestsHub{
		clients:    make(map[*hubClient]bool),
		register:   make(chan *hubClient),
		unregister: make(chan *hubClient),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
	}
}

func (h *TestsHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			monitoring.HubConnections.Inc()
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				monitoring.HubConnections.Dec()
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// 慢消费者直接断开
					delete(h.clients, client)
					close(client.send)
					monitoring.HubConnections.Dec()
				}
			}
		case <-h.done:
			for client := range h.clients {
				close(client.send)
				client.conn.Close()
			}
			h.clients = make(map[*hubClient]bool)
			return
		}
	}
}

func (h *TestsHub) Stop() {
	close(h.done)
}

func (h *TestsHub) NotifyTestCreated(id uint) {
	h.publish(TestsEvent{Type: "TestCreated", TestID: id})
}

func (h *TestsHub) NotifyTestRemoved(id uint) {
	h.publish(TestsEvent{Type: "TestRemoved", TestID: id})
}

func (h *TestsHub) publish(event TestsEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		logger.Log.Warn("tests hub broadcast buffer full, dropping event",
			zap.String("type", event.Type))
	}
}

// ServeWS 升级连接并注册订阅者。订阅是只读的，入站消息被丢弃。
func (h *TestsHub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &hubClient{conn: conn, send: make(chan []byte, 16)}
	h.register <- client

	go client.writePump()
	go client.readPump(h)
}

func (c *hubClient) readPump(h *TestsHub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(hubPongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(hubPongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *hubClient) writePump() {
	ticker := time.NewTicker(hubPingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(hubWriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(hubWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
