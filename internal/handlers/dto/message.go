package dto

// FetchMessagesRequest asks for the merged conversation between two users.
type FetchMessagesRequest struct {
	CurrentUserID string `json:"currentUserId"`
	OtherUserID   string `json:"otherUserId"`
}

// MessagePayload is the data of an inbound "message" socket event.
type MessagePayload struct {
	SenderID    string `json:"senderId"`
	RecipientID string `json:"recipientId"`
	Content     string `json:"content"`
}

// BootstrapConversationRequest carries the caller identity for
// /addNotificationAsConversation.
type BootstrapConversationRequest struct {
	User struct {
		Email string `json:"email"`
	} `json:"user"`
}
