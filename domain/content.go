package domain

import "time"

type ContentCategory string

const (
	CategoryContact ContentCategory = "contact"
	CategoryFree    ContentCategory = "free"
	CategoryText    ContentCategory = "text"
)

// Categories lists every known content category, in a stable order.
func Categories() []ContentCategory {
	return []ContentCategory{CategoryContact, CategoryFree, CategoryText}
}

// Content is a short canned text row used to vary bot replies.
// Rows are written by the seeding tool and only read by the bot.
type Content struct {
	ID        string          `json:"id" validate:"required"`
	Category  ContentCategory `json:"category" validate:"required,oneof=contact free text"`
	Body      string          `json:"body" validate:"required,min=2,max=65535"`
	CreatedAt time.Time       `json:"created_at"`
}
