package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/conductorhq/conductor/pkg/version"
)

// discordMessageLimit is Discord's hard cap on message content length.
const discordMessageLimit = 2000

// Discord delivers run output as direct messages through a bot session.
// The session is REST-only; no gateway connection is opened.
type Discord struct {
	session *discordgo.Session
}

// NewDiscord creates the Discord provider. An empty token returns nil
// so deployments without a bot simply skip registration.
func NewDiscord(token string) (*Discord, error) {
	if token == "" {
		return nil, nil
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.UserAgent = version.Full()
	return &Discord{session: session}, nil
}

// Name implements Provider.
func (d *Discord) Name() string { return "discord" }

// discordPayload mirrors the payload the engine enqueues for discord
// channels.
type discordPayload struct {
	Content       string `json:"content"`
	DiscordUserID string `json:"discordUserId"`
}

// Deliver opens (or reuses) the DM channel with the recipient and sends
// the content, chunked under the Discord length cap.
func (d *Discord) Deliver(ctx context.Context, messageID string, payload json.RawMessage) error {
	var p discordPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("failed to decode discord payload: %w", err)
	}
	if p.DiscordUserID == "" {
		return fmt.Errorf("discord payload missing discordUserId")
	}
	if strings.TrimSpace(p.Content) == "" {
		return fmt.Errorf("discord payload for message %s has no content", messageID)
	}

	dm, err := d.session.UserChannelCreate(p.DiscordUserID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	for _, chunk := range splitMessage(p.Content, discordMessageLimit) {
		if _, err := d.session.ChannelMessageSend(dm.ID, chunk, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("failed to send discord message: %w", err)
		}
	}
	return nil
}

// splitMessage breaks content into chunks of at most max bytes,
// preferring newline boundaries so chunks read as whole paragraphs.
func splitMessage(content string, max int) []string {
	if len(content) <= max {
		return []string{content}
	}

	var chunks []string
	for len(content) > max {
		cut := strings.LastIndexByte(content[:max], '\n')
		if cut <= 0 {
			cut = max
		}
		chunks = append(chunks, strings.TrimRight(content[:cut], "\n"))
		content = strings.TrimLeft(content[cut:], "\n")
	}
	if content != "" {
		chunks = append(chunks, content)
	}
	return chunks
}
