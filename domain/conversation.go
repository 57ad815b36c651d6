package domain

import (
	"math/rand/v2"
	"time"
)

type Status int

const (
	StatusWait Status = iota
	StatusCall
)

func (s Status) String() string {
	switch s {
	case StatusCall:
		return "call"
	default:
		return "wait"
	}
}

// Cadence controls how the reminder scheduler spaces wake-up messages.
type Cadence int

const (
	CadenceRandom Cadence = iota
	CadenceFaster
	CadenceLatter
)

func (c Cadence) String() string {
	switch c {
	case CadenceFaster:
		return "faster"
	case CadenceLatter:
		return "latter"
	default:
		return "random"
	}
}

// Conversation is the bot's record of a multi-member chat it has joined.
// It only exists while the chat has more than one member; the record is
// created on join, touched on every message and destroyed once the bot
// observes the chat is empty.
type Conversation struct {
	ConversationID string    `json:"conversation_id" validate:"required,max=255"`
	MemberCount    int       `json:"member_count" validate:"min=0,max=50"`
	PostCount      int       `json:"post_count" validate:"min=0,max=1000000000"`
	Cadence        Cadence   `json:"cadence"`
	Status         Status    `json:"status"`
	NextRemindAt   time.Time `json:"next_remind_at" validate:"required"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewConversation builds the initial record for a freshly joined chat.
// The first reminder is armed for tomorrow so the scheduler picks the
// conversation up on its next daily pass.
func NewConversation(conversationID string, memberCount int, now time.Time) Conversation {
	return Conversation{
		ConversationID: conversationID,
		MemberCount:    memberCount,
		Cadence:        CadenceRandom,
		Status:         StatusWait,
		NextRemindAt:   DateOnly(now.AddDate(0, 0, 1)),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Touch refreshes the record after a message was observed in the chat.
func (c *Conversation) Touch(memberCount int, now time.Time) {
	c.MemberCount = memberCount
	c.PostCount++
	c.UpdatedAt = now
}

// Reschedule arms the next reminder inside the cadence window and resets
// the record for a new cycle. Day offsets per cadence: faster 21-32,
// latter 49-60, random 17-60.
func (c *Conversation) Reschedule(memberCount int, now time.Time) {
	var from, to int
	switch c.Cadence {
	case CadenceFaster:
		from, to = 21, 32
	case CadenceLatter:
		from, to = 49, 60
	default:
		from, to = 17, 60
	}
	days := from + rand.IntN(to-from+1)

	c.NextRemindAt = DateOnly(now.AddDate(0, 0, days))
	c.Status = StatusWait
	c.PostCount++
	c.MemberCount = memberCount
	c.UpdatedAt = now
}

// DateOnly truncates a timestamp to midnight, keeping the location.
// Reminder dates carry no intra-day precision.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
