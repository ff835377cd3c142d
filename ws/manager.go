package ws

import (
	"sync"

	"localgigs_backend/internal/logger"
	chatmodels "localgigs_backend/internal/models/chat"
	"localgigs_backend/internal/services"
)

// Manager tracks connected clients per user and fans stored messages
// out to participants subscribed to the conversation. It implements
// services.MessagePublisher.
type Manager struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex

	chatService *services.ChatService
}

func NewManager(chatService *services.ChatService) *Manager {
	return &Manager{
		clients:     make(map[string]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		chatService: chatService,
	}
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			if m.clients[client.UserID] == nil {
				m.clients[client.UserID] = make(map[*Client]bool)
			}
			m.clients[client.UserID][client] = true
			m.mu.Unlock()
			logger.Debug("websocket client registered", "user_id", client.UserID)

		case client := <-m.unregister:
			m.mu.Lock()
			if conns, ok := m.clients[client.UserID]; ok && conns[client] {
				delete(conns, client)
				if len(conns) == 0 {
					delete(m.clients, client.UserID)
				}
				close(client.Send)
			}
			m.mu.Unlock()
			logger.Debug("websocket client unregistered", "user_id", client.UserID)
		}
	}
}

// PublishMessage delivers a stored message to every connected
// participant subscribed to its conversation.
func (m *Manager) PublishMessage(participants []string, message *chatmodels.Message) {
	event := Event{
		Type:           EventMessage,
		ConversationID: message.ConversationID,
		Message: &MessagePayload{
			ID:        message.ID,
			SenderID:  message.SenderID,
			Content:   message.Content,
			Timestamp: message.Timestamp,
		},
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, userID := range participants {
		for client := range m.clients[userID] {
			if !client.subscribedTo(message.ConversationID) {
				continue
			}
			select {
			case client.Send <- event:
			default:
				// Slow consumer, drop the connection.
				go func(c *Client) { m.unregister <- c }(client)
			}
		}
	}
}

// IsConnected reports whether the user has at least one live socket.
func (m *Manager) IsConnected(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients[userID]) > 0
}
