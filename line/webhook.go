package line

import (
	"net/http"

	"github.com/line/line-bot-sdk-go/v7/linebot"

	"reline-bot/domain/webhook"
)

// ErrInvalidSignature is returned by ParseRequest when the payload signature
// does not match the channel secret.
var ErrInvalidSignature = linebot.ErrInvalidSignature

// ParseRequest verifies the webhook signature and converts the payload into
// domain events. Event types the bot does not handle are dropped here.
func (a *SDKAdapter) ParseRequest(r *http.Request) ([]webhook.Event, error) {
	events, err := a.client.ParseRequest(r)
	if err != nil {
		return nil, err
	}
	return FromSDKEvents(events), nil
}

// FromSDKEvents maps SDK webhook events onto the domain variants.
func FromSDKEvents(events []*linebot.Event) []webhook.Event {
	converted := make([]webhook.Event, 0, len(events))
	for _, ev := range events {
		if domainEvent, ok := fromSDKEvent(ev); ok {
			converted = append(converted, domainEvent)
		}
	}
	return converted
}

func fromSDKEvent(ev *linebot.Event) (webhook.Event, bool) {
	var source webhook.Source
	if ev.Source != nil {
		source = webhook.Source{GroupID: ev.Source.GroupID, RoomID: ev.Source.RoomID}
	}
	at := ev.Timestamp.UnixMilli()

	switch ev.Type {
	case linebot.EventTypeMessage:
		message := webhook.MessageEvent{
			At:          at,
			From:        source,
			ReplyToken:  ev.ReplyToken,
			MessageKind: webhook.MessageOther,
		}
		switch m := ev.Message.(type) {
		case *linebot.TextMessage:
			message.MessageID = m.ID
			message.Text = m.Text
			message.MessageKind = webhook.MessageText
		case *linebot.StickerMessage:
			message.MessageID = m.ID
			message.MessageKind = webhook.MessageSticker
		}
		return message, true
	case linebot.EventTypeJoin:
		return webhook.JoinEvent{At: at, From: source}, true
	case linebot.EventTypeMemberJoined:
		return webhook.MemberJoinedEvent{At: at, From: source}, true
	case linebot.EventTypeLeave:
		return webhook.LeaveEvent{At: at, From: source}, true
	case linebot.EventTypeMemberLeft:
		return webhook.MemberLeftEvent{At: at, From: source}, true
	default:
		return nil, false
	}
}
