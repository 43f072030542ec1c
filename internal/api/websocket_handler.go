package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/utils"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
	websocketWriteWait             = 10 * time.Second
	websocketPongWait              = 60 * time.Second
	websocketPingPeriod            = websocketPongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

//go:generate mockery --name ChunkSubscriber --output ../mocks
type ChunkSubscriber interface {
	Subscribe(ctx context.Context, ownerID string, callback func(*domain.PitchChunk)) error
	Unsubscribe(ownerID string)
	Close()
}

type Client struct {
	conn    *websocket.Conn
	ownerID string
	send    chan []byte
}

// WebSocketHandler relays streamed pitch fragments to the owner's open
// browser connections. One Redis subscription is held per owner while at
// least one of their clients is connected.
type WebSocketHandler struct {
	clients      map[*Client]bool
	register     chan *Client
	unregister   chan *Client
	mutex        sync.Mutex
	logger       *logger.Logger
	pubsub       ChunkSubscriber
	ctx          context.Context
	cancel       context.CancelFunc
	ownerClients map[string]int
}

func NewWebSocketHandler(logger *logger.Logger, pubsub ChunkSubscriber) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:      make(map[*Client]bool),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		logger:       logger,
		pubsub:       pubsub,
		ctx:          ctx,
		cancel:       cancel,
		ownerClients: make(map[string]int),
	}
}

// HandleWebSocket Stream pitch fragments while they are generated
// @Summary Pitch stream
// @Description Upgrades to a websocket that receives every fragment of the caller's in-flight generations, then a done message carrying the request id
// @Tags    pitches
// @Param   access_token query string false "Bearer token, for clients that cannot set headers"
// @Success 101
// @Failure 401 {object} dto.Error
// @Router  /pitches/stream [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	ownerID := c.GetString(string(utils.OwnerIDKey))
	if ownerID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.logger.Warn("Failed to upgrade websocket", zap.Error(err))
		return
	}

	client := &Client{
		conn:    conn,
		ownerID: ownerID,
		send:    make(chan []byte, websocketSendChannelBufferSize),
	}

	select {
	case h.register <- client:
	case <-h.ctx.Done():
		conn.Close()
		return
	}

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.ownerClients[client.ownerID]++
			first := h.ownerClients[client.ownerID] == 1
			h.mutex.Unlock()

			if first {
				go h.subscribe(client.ownerID)
			}

		case client := <-h.unregister:
			h.mutex.Lock()
			h.removeClient(client)
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

// subscribe runs off the hub loop since Subscribe waits for Redis to confirm.
// If the owner's last socket closed in the meantime the subscription is
// dropped again.
func (h *WebSocketHandler) subscribe(ownerID string) {
	if err := h.pubsub.Subscribe(h.ctx, ownerID, h.handleChunk); err != nil {
		if h.ctx.Err() == nil {
			h.logger.Error("Failed to subscribe to pitch chunks", err, zap.String("owner", ownerID))
		}
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.ownerClients[ownerID] == 0 {
		h.pubsub.Unsubscribe(ownerID)
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.pubsub.Close()

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for client := range h.clients {
		h.removeClient(client)
	}
}

// removeClient must be called with the mutex held.
func (h *WebSocketHandler) removeClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	h.ownerClients[client.ownerID]--
	if h.ownerClients[client.ownerID] <= 0 {
		h.pubsub.Unsubscribe(client.ownerID)
		delete(h.ownerClients, client.ownerID)
	}
}

func (h *WebSocketHandler) handleChunk(chunk *domain.PitchChunk) {
	message, err := json.Marshal(chunk)
	if err != nil {
		h.logger.Error("Failed to marshal pitch chunk", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if client.ownerID != chunk.OwnerID {
			continue
		}
		select {
		case client.send <- message:
		default:
			// slow consumer
			h.logger.Warn("Dropping slow websocket client", zap.String("owner", client.ownerID))
			h.removeClient(client)
		}
	}
}

// ConnectedClients reports how many sockets the owner has open.
func (h *WebSocketHandler) ConnectedClients(ownerID string) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.ownerClients[ownerID]
}

func (h *WebSocketHandler) writePump(client *Client) {
	ticker := time.NewTicker(websocketPingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(websocketWriteWait))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(websocketWriteWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		select {
		case h.unregister <- client:
		case <-h.ctx.Done():
		}
		client.conn.Close()
	}()

	client.conn.SetReadDeadline(time.Now().Add(websocketPongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(websocketPongWait))
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Unexpected websocket close", zap.String("owner", client.ownerID), zap.Error(err))
			}
			return
		}
		// The stream is one way; client messages are ignored.
	}
}
