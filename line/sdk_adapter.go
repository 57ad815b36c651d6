package line

import (
	"context"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// SDKAdapter implements Adapter on top of the official LINE Bot SDK client.
type SDKAdapter struct {
	client *linebot.Client
}

func NewSDKAdapter(channelSecret, channelToken string) (*SDKAdapter, error) {
	client, err := linebot.New(channelSecret, channelToken)
	if err != nil {
		return nil, err
	}
	return &SDKAdapter{client: client}, nil
}

func (a *SDKAdapter) PushMessage(ctx context.Context, targetID, text string) error {
	_, err := a.client.PushMessage(targetID, linebot.NewTextMessage(text)).WithContext(ctx).Do()
	return err
}

func (a *SDKAdapter) ReplyMessage(ctx context.Context, replyToken, text string) error {
	_, err := a.client.ReplyMessage(replyToken, linebot.NewTextMessage(text)).WithContext(ctx).Do()
	return err
}

func (a *SDKAdapter) GetGroupMemberCount(ctx context.Context, groupID string) (int, error) {
	res, err := a.client.GetGroupMemberCount(groupID).WithContext(ctx).Do()
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

func (a *SDKAdapter) GetRoomMemberCount(ctx context.Context, roomID string) (int, error) {
	res, err := a.client.GetRoomMemberCount(roomID).WithContext(ctx).Do()
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

func (a *SDKAdapter) LeaveGroup(ctx context.Context, groupID string) error {
	_, err := a.client.LeaveGroup(groupID).WithContext(ctx).Do()
	return err
}

func (a *SDKAdapter) LeaveRoom(ctx context.Context, roomID string) error {
	_, err := a.client.LeaveRoom(roomID).WithContext(ctx).Do()
	return err
}
