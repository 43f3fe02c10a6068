package chat

import (
	"context"
	"fmt"
	"strings"
)

// Generator produces an assistant reply for a conversation.
// Implementations wrap an external text-generation endpoint or a local
// fallback; callers treat any error as "no reply available".
type Generator interface {
	Reply(ctx context.Context, system string, turns []Turn) (string, error)
}

// EchoGenerator is the demo backend used when no API key is configured.
// It never fails.
type EchoGenerator struct{}

func (EchoGenerator) Reply(_ context.Context, _ string, turns []Turn) (string, error) {
	last := ""
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == RoleUser {
			last = strings.TrimSpace(turns[i].Text)
			break
		}
	}
	if last == "" {
		return "MythOS demo mode: ask me anything and I will echo it back.", nil
	}
	return fmt.Sprintf("MythOS demo mode: you said %q. Configure an API key for real answers.", last), nil
}
