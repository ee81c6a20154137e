package usecase

import (
	"context"
	"log"

	"serviexpress/internal/usecase/interfaces"
	"serviexpress/pkg"
)

// NotifyPolicy makes the best-effort vs. propagating treatment of messaging
// side effects explicit at each call site. Creation and expiry notifications
// are best-effort; accept/reject/cancel and payment confirmations are part
// of the user-visible contract and propagate failures.

type NotifyPolicy int

const (
	NotifyBestEffort NotifyPolicy = iota
	NotifyPropagate
)

func notifyChannel(ctx context.Context, chat interfaces.IChatGateway, channelID, authorID, text string, policy NotifyPolicy) error {
	if err := chat.SendMessage(ctx, channelID, authorID, text); err != nil {
		if policy == NotifyBestEffort {
			log.Printf("[notify][usecase] send suppressed channel_id=%s err=%v", channelID, err)
			return nil
		}
		log.Printf("[notify][usecase] send failed channel_id=%s err=%v", channelID, err)
		return pkg.NewDependencyFailure("Failed to notify the conversation channel", err)
	}
	return nil
}

func mirrorChannelMetadata(ctx context.Context, chat interfaces.IChatGateway, channelID string, metadata interfaces.ChannelMetadata, policy NotifyPolicy) error {
	if err := chat.UpdateChannelMetadata(ctx, channelID, metadata); err != nil {
		if policy == NotifyBestEffort {
			log.Printf("[notify][usecase] metadata update suppressed channel_id=%s err=%v", channelID, err)
			return nil
		}
		log.Printf("[notify][usecase] metadata update failed channel_id=%s err=%v", channelID, err)
		return pkg.NewDependencyFailure("Failed to update the conversation channel", err)
	}
	return nil
}
