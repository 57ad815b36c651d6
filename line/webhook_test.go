package line

import (
	"testing"
	"time"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"github.com/stretchr/testify/require"

	"reline-bot/domain/webhook"
)

func TestFromSDKEvents_TextMessage(t *testing.T) {
	req := require.New(t)
	timestamp := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	events := FromSDKEvents([]*linebot.Event{{
		Type:       linebot.EventTypeMessage,
		Timestamp:  timestamp,
		ReplyToken: "t1",
		Source:     &linebot.EventSource{GroupID: "G1"},
		Message:    &linebot.TextMessage{ID: "m1", Text: "hello"},
	}})

	req.Len(events, 1)
	message, ok := events[0].(webhook.MessageEvent)
	req.True(ok)
	req.Equal(webhook.MessageText, message.MessageKind)
	req.Equal("m1", message.MessageID)
	req.Equal("hello", message.Text)
	req.Equal("t1", message.ReplyToken)
	req.Equal("G1", message.From.GroupID)
	req.Equal(timestamp.UnixMilli(), message.OccurredAt())
}

func TestFromSDKEvents_StickerMessage(t *testing.T) {
	req := require.New(t)

	events := FromSDKEvents([]*linebot.Event{{
		Type:       linebot.EventTypeMessage,
		ReplyToken: "t1",
		Source:     &linebot.EventSource{UserID: "U1"},
		Message:    &linebot.StickerMessage{ID: "m2"},
	}})

	req.Len(events, 1)
	message, ok := events[0].(webhook.MessageEvent)
	req.True(ok)
	req.Equal(webhook.MessageSticker, message.MessageKind)
	req.Equal("m2", message.MessageID)
	req.True(message.From.IsOneOnOne())
}

func TestFromSDKEvents_UnknownMessageTypeBecomesOther(t *testing.T) {
	req := require.New(t)

	events := FromSDKEvents([]*linebot.Event{{
		Type:    linebot.EventTypeMessage,
		Source:  &linebot.EventSource{RoomID: "R1"},
		Message: &linebot.LocationMessage{ID: "m3"},
	}})

	req.Len(events, 1)
	message, ok := events[0].(webhook.MessageEvent)
	req.True(ok)
	req.Equal(webhook.MessageOther, message.MessageKind)
	req.Empty(message.MessageID)
}

func TestFromSDKEvents_LifecycleEvents(t *testing.T) {
	req := require.New(t)
	source := &linebot.EventSource{GroupID: "G1"}

	events := FromSDKEvents([]*linebot.Event{
		{Type: linebot.EventTypeJoin, Source: source},
		{Type: linebot.EventTypeMemberJoined, Source: source},
		{Type: linebot.EventTypeLeave, Source: source},
		{Type: linebot.EventTypeMemberLeft, Source: source},
	})

	req.Len(events, 4)
	req.Equal(webhook.KindJoin, events[0].Kind())
	req.Equal(webhook.KindMemberJoined, events[1].Kind())
	req.Equal(webhook.KindLeave, events[2].Kind())
	req.Equal(webhook.KindMemberLeft, events[3].Kind())
	for _, event := range events {
		req.Equal("G1", event.Source().ConversationID())
	}
}

func TestFromSDKEvents_UnhandledTypesAreDropped(t *testing.T) {
	req := require.New(t)

	events := FromSDKEvents([]*linebot.Event{
		{Type: linebot.EventTypeFollow, Source: &linebot.EventSource{UserID: "U1"}},
		{Type: linebot.EventTypePostback, Source: &linebot.EventSource{GroupID: "G1"}},
	})

	req.Empty(events)
}

func TestFromSDKEvents_NilSource(t *testing.T) {
	req := require.New(t)

	events := FromSDKEvents([]*linebot.Event{{Type: linebot.EventTypeJoin}})

	req.Len(events, 1)
	req.True(events[0].Source().IsOneOnOne())
}
