package chat

import (
	"context"
	"strings"

	openailib "github.com/sashabaranov/go-openai"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/enums"
	pkgopenai "github.com/DustyWalks/walksandlawns-app2025/pkg/openai"
)

const systemPrompt = `You are a helpful AI assistant for Walks & Lawns, a property maintenance subscription service in Edmonton, Alberta.

Our service:
- $188/month subscription covering year-round maintenance
- Winter: Unlimited snow removal and walkway clearing
- Summer: Weekly lawn mowing and edging
- Spring & Fall: Complete yard cleanups
- Optional add-ons: Premium snow removal ($49/mo), Aeration ($89 one-time), Fertilization program ($39/mo), Additional lawn/walk coverage ($69/mo)

You help customers with:
- Questions about services and pricing
- Subscription management
- Scheduling concerns
- General property maintenance advice

Be friendly, professional, and conversational. Keep responses concise but helpful. If you don't know something specific about a customer's account, suggest they check their dashboard or contact support directly.`

const fallbackReply = "I'm sorry, I couldn't generate a response."

// Turn is one chat exchange entry handed to the completion API.
type Turn struct {
	Role    enums.ChatRole
	Content string
}

// CompletionClient generates the assistant reply for a conversation
// history. The system prompt is owned by the client and never stored.
type CompletionClient interface {
	Complete(ctx context.Context, history []Turn) (string, error)
}

type completionClient struct {
	client *pkgopenai.Client
}

// NewCompletionClient wraps the shared completion client for chat use.
func NewCompletionClient(client *pkgopenai.Client) CompletionClient {
	return &completionClient{client: client}
}

func (c *completionClient) Complete(ctx context.Context, history []Turn) (string, error) {
	messages := make([]openailib.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openailib.ChatCompletionMessage{
		Role:    openailib.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, turn := range history {
		messages = append(messages, openailib.ChatCompletionMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	response, err := c.client.API().CreateChatCompletion(ctx, openailib.ChatCompletionRequest{
		Model:               c.client.Model(),
		Messages:            messages,
		MaxCompletionTokens: c.client.MaxCompletionTokens(),
	})
	if err != nil {
		return "", err
	}

	if len(response.Choices) == 0 || strings.TrimSpace(response.Choices[0].Message.Content) == "" {
		return fallbackReply, nil
	}
	return response.Choices[0].Message.Content, nil
}
