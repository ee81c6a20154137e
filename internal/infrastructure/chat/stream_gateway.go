package chat

import (
	"context"
	"errors"
	"log"

	"serviexpress/internal/usecase/interfaces"

	stream "github.com/GetStream/stream-chat-go/v6"
)

var ErrMissingStreamCredentials = errors.New("missing STREAM_API_KEY or STREAM_API_SECRET")

const channelType = "messaging"

// StreamGateway backs IChatGateway with Stream Chat. Channel ids are decided
// by the caller, so every component can address a conversation without a
// lookup.
type StreamGateway struct {
	client *stream.Client
}

var _ interfaces.IChatGateway = (*StreamGateway)(nil)

func NewStreamGateway(apiKey, apiSecret string) (*StreamGateway, error) {
	if apiKey == "" || apiSecret == "" {
		log.Printf("[chat][gateway] missing Stream credentials")
		return nil, ErrMissingStreamCredentials
	}
	client, err := stream.NewClient(apiKey, apiSecret)
	if err != nil {
		log.Printf("[chat][gateway] failed creating client err=%v", err)
		return nil, err
	}
	return &StreamGateway{client: client}, nil
}

func (g *StreamGateway) CreateChannel(ctx context.Context, channelID string, memberIDs []string, createdByID string, metadata interfaces.ChannelMetadata) error {
	data := &stream.ChannelRequest{Members: memberIDs}
	if len(metadata) > 0 {
		data.ExtraData = metadata
	}
	_, err := g.client.CreateChannel(ctx, channelType, channelID, createdByID, data)
	if err != nil {
		log.Printf("[chat][gateway] create channel failed channel_id=%s err=%v", channelID, err)
		return err
	}
	return nil
}

func (g *StreamGateway) SendMessage(ctx context.Context, channelID, userID, text string) error {
	ch := g.client.Channel(channelType, channelID)
	_, err := ch.SendMessage(ctx, &stream.Message{Text: text}, userID)
	if err != nil {
		log.Printf("[chat][gateway] send message failed channel_id=%s err=%v", channelID, err)
		return err
	}
	return nil
}

func (g *StreamGateway) UpdateChannelMetadata(ctx context.Context, channelID string, metadata interfaces.ChannelMetadata) error {
	ch := g.client.Channel(channelType, channelID)
	_, err := ch.PartialUpdate(ctx, stream.PartialUpdate{Set: metadata})
	if err != nil {
		log.Printf("[chat][gateway] metadata update failed channel_id=%s err=%v", channelID, err)
		return err
	}
	return nil
}
