package models

import "time"

// Message is a single turn in a conversation. Role is either "user" or
// "assistant".
type Message struct {
	Role      string    `bson:"role" json:"role"`
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Conversation holds the append-only chat history for one user. It is
// created lazily on the first chat call (upsert) and never deleted.
type Conversation struct {
	ID       string    `bson:"id" json:"id"`
	UserID   string    `bson:"userId" json:"userId"`
	Messages []Message `bson:"messages" json:"messages"`
}
