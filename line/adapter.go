//go:generate go run go.uber.org/mock/mockgen -source=adapter.go -destination=../mocks/mock_adapter.go -package=mocks
package line

import "context"

// Adapter is the boundary to the chat platform's messaging API.
// Every call is a blocking round-trip and may fail with a transport error.
type Adapter interface {
	PushMessage(ctx context.Context, targetID, text string) error
	ReplyMessage(ctx context.Context, replyToken, text string) error
	GetGroupMemberCount(ctx context.Context, groupID string) (int, error)
	GetRoomMemberCount(ctx context.Context, roomID string) (int, error)
	LeaveGroup(ctx context.Context, groupID string) error
	LeaveRoom(ctx context.Context, roomID string) error
}
