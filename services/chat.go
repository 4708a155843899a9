package services

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"evoxabackend/models"
	"evoxabackend/store"
)

const systemPrompt = "You are Evoxa's AI customer service assistant. " +
	"You answer questions about Evoxa's services, pricing, websites, " +
	"AI live chat, and AI phone assistants. " +
	"Websites cost £75 for the first month then £25 a month. " +
	"AI Chatbots and AI Voice Receptionists require them to contact us and book an appointment. " +
	"A professional email costs £15 a month but must be bought along with the websites. " +
	"See evoxa.co.uk for more info. Be clear and friendly"

// FallbackReply is returned when the client sends an empty message.
const FallbackReply = "I didn’t receive a message. Try again?"

// AnonymousUser keys usage rows for clients that send no user_id.
const AnonymousUser = "anonymous"

// CompletionClient is the external text-generation collaborator. One
// message in, reply text and total token count out.
type CompletionClient interface {
	Complete(ctx context.Context, message string) (string, int, error)
}

// Completions is the process-wide client, set once in main.
var Completions CompletionClient

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{client: openai.NewClient(apiKey), model: model}
}

func (o *OpenAIClient) Complete(ctx context.Context, message string) (string, int, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", 0, fmt.Errorf("completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", 0, fmt.Errorf("completion: empty response")
	}
	return resp.Choices[0].Message.Content, resp.Usage.TotalTokens, nil
}

// Converse forwards one user message to the completion service and
// records the usage against userID. Each call is stateless for the
// model: there is no conversation history beyond the system prompt.
func Converse(ctx context.Context, message, userID string) (string, int, error) {
	if message == "" {
		return FallbackReply, 0, nil
	}
	if userID == "" {
		userID = AnonymousUser
	}

	reply, tokens, err := Completions.Complete(ctx, message)
	if err != nil {
		return "", 0, err
	}

	err = store.Usage.Update(func(usage map[string]models.Usage) error {
		row := usage[userID]
		row.Messages++
		row.Tokens += tokens
		usage[userID] = row
		return nil
	})
	if err != nil {
		return "", 0, err
	}

	return reply, tokens, nil
}
