package dto

type OpenConversationRequest struct {
	OtherUserID string `json:"other_user_id" binding:"required" validate:"required"`
}

type ConversationResponse struct {
	ID            string `json:"id"`
	OtherUserID   string `json:"other_user_id"`
	OtherUserName string `json:"otherUserName"`
	LastMessage   string `json:"lastMessage"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required" validate:"required"`
}

type MessageResponse struct {
	ID        string `json:"id"`
	SenderID  string `json:"senderId"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}
