package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"localgigs_backend/internal/logger"
)

const (
	ActionSubscribe   = "subscribe"
	ActionUnsubscribe = "unsubscribe"

	EventMessage    = "message"
	EventSubscribed = "subscribed"
	EventError      = "error"
)

type IncomingFrame struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type SubscribePayload struct {
	ConversationID string `json:"conversation_id"`
}

type MessagePayload struct {
	ID        string `json:"id"`
	SenderID  string `json:"senderId"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

type Event struct {
	Type           string          `json:"type"`
	ConversationID string          `json:"conversation_id,omitempty"`
	Message        *MessagePayload `json:"message,omitempty"`
	Error          string          `json:"error,omitempty"`
}

type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan Event

	manager       *Manager
	subscriptions map[string]bool
	mu            sync.RWMutex
}

func newClient(manager *Manager, conn *websocket.Conn, userID string) *Client {
	return &Client{
		UserID:        userID,
		Conn:          conn,
		Send:          make(chan Event, 256),
		manager:       manager,
		subscriptions: make(map[string]bool),
	}
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func (c *Client) subscribedTo(conversationID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.subscriptions[conversationID]
}

func (c *Client) readPump() {
	defer func() {
		c.manager.unregister <- c
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("websocket read error", "user_id", c.UserID, "error", err)
			}
			return
		}

		var frame IncomingFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			c.Send <- Event{Type: EventError, Error: "malformed frame"}
			continue
		}
		c.handleFrame(frame)
	}
}

func (c *Client) writePump() {
	defer c.Conn.Close()
	for event := range c.Send {
		if err := c.Conn.WriteJSON(event); err != nil {
			logger.Debug("websocket write error", "user_id", c.UserID, "error", err)
			return
		}
	}
}

func (c *Client) handleFrame(frame IncomingFrame) {
	switch frame.Action {
	case ActionSubscribe:
		var payload SubscribePayload
		if err := json.Unmarshal(frame.Data, &payload); err != nil || payload.ConversationID == "" {
			c.Send <- Event{Type: EventError, Error: "subscribe requires a conversation_id"}
			return
		}
		// Only participants may listen in.
		participants, err := c.manager.chatService.Participants(payload.ConversationID)
		if err != nil || !contains(participants, c.UserID) {
			c.Send <- Event{Type: EventError, ConversationID: payload.ConversationID, Error: "conversation unavailable"}
			return
		}
		c.mu.Lock()
		c.subscriptions[payload.ConversationID] = true
		c.mu.Unlock()
		c.Send <- Event{Type: EventSubscribed, ConversationID: payload.ConversationID}

	case ActionUnsubscribe:
		var payload SubscribePayload
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			return
		}
		c.mu.Lock()
		delete(c.subscriptions, payload.ConversationID)
		c.mu.Unlock()

	default:
		c.Send <- Event{Type: EventError, Error: "unknown action: " + frame.Action}
	}
}
