package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"localgigs_backend/internal/appErrors"
	chatmodels "localgigs_backend/internal/models/chat"
	"localgigs_backend/internal/repositories"
	chatrepo "localgigs_backend/internal/repositories/chat"
	"localgigs_backend/internal/services/dto"
)

// MessagePublisher pushes a stored message to live subscribers. The ws
// package implements it; a nil publisher disables the feed.
type MessagePublisher interface {
	PublishMessage(participants []string, message *chatmodels.Message)
}

// ChatService is the conversation store: one conversation per user
// pair, append-only ordered messages.
type ChatService struct {
	conversationRepo chatrepo.ConversationRepository
	messageRepo      chatrepo.MessageRepository
	userRepo         repositories.UserRepository
	publisher        MessagePublisher
}

func NewChatService(
	conversationRepo chatrepo.ConversationRepository,
	messageRepo chatrepo.MessageRepository,
	userRepo repositories.UserRepository,
) *ChatService {
	return &ChatService{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		userRepo:         userRepo,
	}
}

// SetPublisher attaches the live-feed publisher. Called once at wiring
// time; the ws manager needs the service too, hence the setter.
func (s *ChatService) SetPublisher(publisher MessagePublisher) {
	s.publisher = publisher
}

// GetOrCreateConversation returns the one conversation for the pair,
// creating it with an empty last message on first contact. Both
// argument orders return the same id.
func (s *ChatService) GetOrCreateConversation(userID, otherUserID string) (*dto.ConversationResponse, error) {
	if userID == otherUserID {
		return nil, appErrors.NewBadRequestError("Cannot open a conversation with yourself")
	}

	other, err := s.userRepo.FindByID(otherUserID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.StoreError("resolve participant", err)
	}

	conversation, err := s.conversationRepo.FindByPair(userID, otherUserID)
	if err != nil {
		if !appErrors.Is(err, chatrepo.ErrConversationNotFound) {
			return nil, appErrors.StoreError("lookup conversation", err)
		}

		conversation = &chatmodels.Conversation{
			ID:          uuid.NewString(),
			UserA:       userID,
			UserB:       otherUserID,
			PairKey:     chatmodels.PairKeyFor(userID, otherUserID),
			LastMessage: "",
		}
		// Create resolves the concurrent-create race to the surviving row.
		if err := s.conversationRepo.Create(conversation); err != nil {
			return nil, appErrors.StoreError("create conversation", err)
		}
	}

	return &dto.ConversationResponse{
		ID:            conversation.ID,
		OtherUserID:   other.ID,
		OtherUserName: other.DisplayName(),
		LastMessage:   conversation.LastMessage,
	}, nil
}

// ListConversations returns the user's threads annotated with the
// other party's display name.
func (s *ChatService) ListConversations(userID string) ([]dto.ConversationResponse, error) {
	conversations, err := s.conversationRepo.FindAllByUser(userID)
	if err != nil {
		return nil, appErrors.StoreError("list conversations", err)
	}

	responses := make([]dto.ConversationResponse, 0, len(conversations))
	for i := range conversations {
		c := &conversations[i]
		resp := dto.ConversationResponse{
			ID:          c.ID,
			OtherUserID: c.OtherParticipant(userID),
			LastMessage: c.LastMessage,
		}
		if other, err := s.userRepo.FindByID(resp.OtherUserID); err == nil {
			resp.OtherUserName = other.DisplayName()
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// SendMessage appends a message with the server-observed timestamp and
// refreshes the conversation's last-message preview. The preview write
// comes second: if it fails the message is already durable and the
// stale preview is surfaced as a store error for the caller to retry.
func (s *ChatService) SendMessage(conversationID, senderID, content string) (*dto.MessageResponse, error) {
	if strings.TrimSpace(content) == "" {
		return nil, appErrors.ErrEmptyMessage
	}

	conversation, err := s.loadConversation(conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(senderID) {
		return nil, appErrors.ErrNotParticipant
	}

	message := &chatmodels.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		Timestamp:      time.Now().UnixMilli(),
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, appErrors.StoreError("append message", err)
	}

	if err := s.conversationRepo.UpdateLastMessage(conversationID, content); err != nil {
		return nil, appErrors.StoreError("update last message", err)
	}

	if s.publisher != nil {
		s.publisher.PublishMessage([]string{conversation.UserA, conversation.UserB}, message)
	}

	return toMessageResponse(message), nil
}

// ListMessages returns the conversation's messages ascending by
// timestamp. The ws feed delivers subsequent messages live.
func (s *ChatService) ListMessages(conversationID, userID string) ([]dto.MessageResponse, error) {
	conversation, err := s.loadConversation(conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, appErrors.ErrNotParticipant
	}

	messages, err := s.messageRepo.ListByConversation(conversationID)
	if err != nil {
		return nil, appErrors.StoreError("list messages", err)
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, *toMessageResponse(&messages[i]))
	}
	return responses, nil
}

// Participants returns both user ids of a conversation. Used by the ws
// handler to authorize subscriptions.
func (s *ChatService) Participants(conversationID string) ([]string, error) {
	conversation, err := s.loadConversation(conversationID)
	if err != nil {
		return nil, err
	}
	return []string{conversation.UserA, conversation.UserB}, nil
}

func (s *ChatService) loadConversation(conversationID string) (*chatmodels.Conversation, error) {
	conversation, err := s.conversationRepo.FindByID(conversationID)
	if err != nil {
		if appErrors.Is(err, chatrepo.ErrConversationNotFound) {
			return nil, appErrors.ErrConversationNotFound
		}
		return nil, appErrors.StoreError("load conversation", err)
	}
	return conversation, nil
}

func toMessageResponse(message *chatmodels.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:        message.ID,
		SenderID:  message.SenderID,
		Content:   message.Content,
		Timestamp: message.Timestamp,
	}
}
