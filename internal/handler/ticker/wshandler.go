package ticker

import (
	"net/http"
	"sync"
	"time"

	"tradesense/internal/service"
	"tradesense/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

// 客户端请求的消息格式
type ClientMessage struct {
	Action  string   `json:"action"`  // subscribe | unsubscribe
	Symbols []string `json:"symbols"` // ["TCS", "INFY"]
}

type ClientConn struct {
	Conn    *websocket.Conn
	Send    chan []byte // 异步发送通道
	Symbols map[string]struct{}
}

type Handler struct {
	service  *service.TickerService
	mu       sync.RWMutex
	clients  map[*ClientConn]struct{}
	upgrader websocket.Upgrader
}

func NewHandler(s *service.TickerService) *Handler {
	return &Handler{
		service: s,
		clients: make(map[*ClientConn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // 允许跨域
		},
	}
}

// ServeWS 升级连接并按订阅推送价格
func (h *Handler) ServeWS(ctx *gin.Context) {
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		logger.Errorf("ws upgrade failed: %v", err)
		return
	}
	client := &ClientConn{
		Conn:    conn,
		Send:    make(chan []byte, 16),
		Symbols: make(map[string]struct{}),
	}
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(client)
	h.readLoop(client)
}

func (h *Handler) readLoop(client *ClientConn) {
	defer h.drop(client)
	for {
		_, msg, err := client.Conn.ReadMessage()
		if err != nil {
			return
		}
		var cm ClientMessage
		if err := json.Unmarshal(msg, &cm); err != nil {
			continue
		}
		h.mu.Lock()
		switch cm.Action {
		case "subscribe":
			for _, s := range cm.Symbols {
				client.Symbols[s] = struct{}{}
			}
		case "unsubscribe":
			for _, s := range cm.Symbols {
				delete(client.Symbols, s)
			}
		}
		h.mu.Unlock()
	}
}

func (h *Handler) writeLoop(client *ClientConn) {
	for payload := range client.Send {
		_ = client.Conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := client.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func (h *Handler) drop(client *ClientConn) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.Send)
	}
	h.mu.Unlock()
	_ = client.Conn.Close()
}

// BroadcastPrices 周期性把最新快照推给各自订阅的客户端，随服务启动常驻
func (h *Handler) BroadcastPrices(interval time.Duration) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		h.mu.RLock()
		for client := range h.clients {
			if len(client.Symbols) == 0 {
				continue
			}
			symbols := make([]string, 0, len(client.Symbols))
			for s := range client.Symbols {
				symbols = append(symbols, s)
			}
			prices := h.service.GetPrices(symbols)
			if len(prices) == 0 {
				continue
			}
			payload, err := json.Marshal(prices)
			if err != nil {
				continue
			}
			select {
			case client.Send <- payload:
			default:
				// 发送通道已满，丢弃这一帧，不阻塞广播
			}
		}
		h.mu.RUnlock()
	}
}
