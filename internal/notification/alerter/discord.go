package alerter

import (
	"context"

	"realtime-client/internal/notification"
	"realtime-client/pkg/discord"
)

type discordAlerter struct {
	d discord.IDiscord
}

// NewDiscord raises alerts as Discord webhook embeds.
func NewDiscord(d discord.IDiscord) notification.Alerter {
	return &discordAlerter{d: d}
}

func (a *discordAlerter) Alert(ctx context.Context, title, text string) error {
	return a.d.SendInfo(ctx, title, text)
}
