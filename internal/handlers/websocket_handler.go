package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/prismbrain/prism/internal/common"
	"github.com/prismbrain/prism/internal/interfaces"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// WebSocketHandler broadcasts application events (project created, source
// ingested, synthesis generated) to connected clients. Ingest events can be
// throttled so bulk uploads don't flood listeners.
type WebSocketHandler struct {
	logger           arbor.ILogger
	clients          map[*websocket.Conn]bool
	clientMutex      map[*websocket.Conn]*sync.Mutex
	mu               sync.RWMutex
	allowedEvents    map[interfaces.EventType]bool // empty = allow all
	ingestThrottler  *rate.Limiter                 // throttles source_ingested broadcasts
	serverInstanceID string                        // clients use this to detect server restarts
}

func NewWebSocketHandler(eventService interfaces.EventService, logger arbor.ILogger, config *common.WebSocketConfig) *WebSocketHandler {
	h := &WebSocketHandler{
		logger:           logger,
		clients:          make(map[*websocket.Conn]bool),
		clientMutex:      make(map[*websocket.Conn]*sync.Mutex),
		allowedEvents:    make(map[interfaces.EventType]bool),
		serverInstanceID: uuid.New().String(),
	}

	if config != nil {
		for _, eventType := range config.AllowedEvents {
			h.allowedEvents[interfaces.EventType(eventType)] = true
		}
		if config.ThrottleInterval != "" {
			if duration, err := time.ParseDuration(config.ThrottleInterval); err == nil {
				h.ingestThrottler = rate.NewLimiter(rate.Every(duration), 1)
			} else {
				logger.Warn().Err(err).
					Str("interval", config.ThrottleInterval).
					Msg("Failed to parse websocket throttle interval, throttling disabled")
			}
		}
	}

	if eventService != nil {
		for _, eventType := range []interfaces.EventType{
			interfaces.EventProjectCreated,
			interfaces.EventSourceIngested,
			interfaces.EventSynthesisGenerated,
		} {
			if err := eventService.Subscribe(eventType, h.onEvent); err != nil {
				logger.Warn().Err(err).Str("event_type", string(eventType)).Msg("Failed to subscribe websocket broadcaster")
			}
		}
	}

	logger.Info().Str("server_instance_id", h.serverInstanceID).Msg("WebSocket handler initialized")

	return h
}

// WebSocketHandler upgrades the connection and registers the client
func (h *WebSocketHandler) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.clientMutex[conn] = &sync.Mutex{}
	clientCount := len(h.clients)
	h.mu.Unlock()

	h.logger.Info().Int("clients", clientCount).Msg("WebSocket client connected")

	h.sendTo(conn, map[string]interface{}{
		"type":               "connected",
		"server_instance_id": h.serverInstanceID,
		"timestamp":          time.Now().UTC(),
	})

	// Reader loop exists only to detect disconnects; clients don't send
	// meaningful messages.
	go func() {
		defer h.removeClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// onEvent is the EventService subscription callback
func (h *WebSocketHandler) onEvent(ctx context.Context, event interfaces.Event) error {
	if len(h.allowedEvents) > 0 && !h.allowedEvents[event.Type] {
		return nil
	}

	if event.Type == interfaces.EventSourceIngested && h.ingestThrottler != nil {
		if !h.ingestThrottler.Allow() {
			return nil
		}
	}

	h.broadcast(map[string]interface{}{
		"type":      string(event.Type),
		"timestamp": event.Timestamp,
		"payload":   event.Payload,
	})
	return nil
}

func (h *WebSocketHandler) broadcast(message map[string]interface{}) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		h.sendTo(conn, message)
	}
}

// sendTo writes one message to one client, serialized per connection since
// gorilla connections do not allow concurrent writers.
func (h *WebSocketHandler) sendTo(conn *websocket.Conn, message map[string]interface{}) {
	h.mu.RLock()
	connMu, ok := h.clientMutex[conn]
	h.mu.RUnlock()
	if !ok {
		return
	}

	connMu.Lock()
	err := conn.WriteJSON(message)
	connMu.Unlock()

	if err != nil {
		h.removeClient(conn)
	}
}

func (h *WebSocketHandler) removeClient(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		delete(h.clientMutex, conn)
		conn.Close()
		h.logger.Info().Int("clients", len(h.clients)).Msg("WebSocket client disconnected")
	}
	h.mu.Unlock()
}

// Close disconnects every client
func (h *WebSocketHandler) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.Close()
	}
	h.clients = make(map[*websocket.Conn]bool)
	h.clientMutex = make(map[*websocket.Conn]*sync.Mutex)
}
