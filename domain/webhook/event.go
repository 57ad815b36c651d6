// Package webhook models inbound chat-platform events as a closed set of
// variants, so the processor can dispatch on kind with an exhaustive switch.
package webhook

import "fmt"

type Kind string

const (
	KindMessage      Kind = "message"
	KindJoin         Kind = "join"
	KindMemberJoined Kind = "member_joined"
	KindLeave        Kind = "leave"
	KindMemberLeft   Kind = "member_left"
)

type MessageKind string

const (
	MessageText    MessageKind = "text"
	MessageSticker MessageKind = "sticker"
	MessageOther   MessageKind = "other"
)

// Source identifies where an event came from. GroupID and RoomID are
// mutually exclusive; both empty means a one-to-one chat.
type Source struct {
	GroupID string
	RoomID  string
}

// ConversationID resolves the tracked chat identifier, group taking
// precedence over room. Empty for one-to-one chats.
func (s Source) ConversationID() string {
	if s.GroupID != "" {
		return s.GroupID
	}
	return s.RoomID
}

func (s Source) IsOneOnOne() bool {
	return s.GroupID == "" && s.RoomID == ""
}

// Event is one unit of webhook payload, immutable once parsed.
type Event interface {
	Kind() Kind
	Source() Source
	// OccurredAt is the platform-supplied timestamp in epoch milliseconds.
	OccurredAt() int64
	// DedupeKey identifies a delivery for redelivery detection.
	DedupeKey() string
}

type MessageEvent struct {
	At          int64
	From        Source
	MessageID   string
	MessageKind MessageKind
	Text        string
	ReplyToken  string
}

func (e MessageEvent) Kind() Kind        { return KindMessage }
func (e MessageEvent) Source() Source    { return e.From }
func (e MessageEvent) OccurredAt() int64 { return e.At }
func (e MessageEvent) DedupeKey() string { return dedupeKey(e.At, e.From, e.MessageID) }

type JoinEvent struct {
	At   int64
	From Source
}

func (e JoinEvent) Kind() Kind        { return KindJoin }
func (e JoinEvent) Source() Source    { return e.From }
func (e JoinEvent) OccurredAt() int64 { return e.At }
func (e JoinEvent) DedupeKey() string { return dedupeKey(e.At, e.From, "") }

type MemberJoinedEvent struct {
	At   int64
	From Source
}

func (e MemberJoinedEvent) Kind() Kind        { return KindMemberJoined }
func (e MemberJoinedEvent) Source() Source    { return e.From }
func (e MemberJoinedEvent) OccurredAt() int64 { return e.At }
func (e MemberJoinedEvent) DedupeKey() string { return dedupeKey(e.At, e.From, "") }

type LeaveEvent struct {
	At   int64
	From Source
}

func (e LeaveEvent) Kind() Kind        { return KindLeave }
func (e LeaveEvent) Source() Source    { return e.From }
func (e LeaveEvent) OccurredAt() int64 { return e.At }
func (e LeaveEvent) DedupeKey() string { return dedupeKey(e.At, e.From, "") }

type MemberLeftEvent struct {
	At   int64
	From Source
}

func (e MemberLeftEvent) Kind() Kind        { return KindMemberLeft }
func (e MemberLeftEvent) Source() Source    { return e.From }
func (e MemberLeftEvent) OccurredAt() int64 { return e.At }
func (e MemberLeftEvent) DedupeKey() string { return dedupeKey(e.At, e.From, "") }

func dedupeKey(at int64, from Source, messageID string) string {
	return fmt.Sprintf("%d-%s-%s", at, from.ConversationID(), messageID)
}
