package assistant

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// IntentProposer turns conversation into a Proposal. The LLM sits behind
// this interface so the rest of the assistant works without one.
type IntentProposer interface {
	Propose(
		ctx context.Context,
		scheduleContext string,
		history []Message,
		userMessage string,
	) (*Proposal, error)
}

const systemPrompt = `You are the booking assistant of a hair salon.
Help the customer pick a service, date and time. When the customer has
clearly chosen all three, call create_appointment. Use the busy-slot
schedule provided to avoid proposing taken times. Reply briefly in the
customer's language.`

var createAppointmentTool = &genai.Tool{
	FunctionDeclarations: []*genai.FunctionDeclaration{{
		Name:        ActionCreateAppointment,
		Description: "Book an appointment once service, date and time are decided.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"date":            {Type: genai.TypeString, Description: "YYYY-MM-DD"},
				"time":            {Type: genai.TypeString, Description: "HH:MM, 24h"},
				"service_id":      {Type: genai.TypeInteger},
				"professional_id": {Type: genai.TypeInteger, Description: "omit when the customer has no preference"},
				"notes":           {Type: genai.TypeString},
			},
			Required: []string{"date", "time", "service_id"},
		},
	}},
}

type GeminiProposer struct {
	model *genai.GenerativeModel
}

func NewGeminiProposer(apiKey string) (*GeminiProposer, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.Tools = []*genai.Tool{createAppointmentTool}
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	return &GeminiProposer{model: model}, nil
}

func (g *GeminiProposer) Propose(
	ctx context.Context,
	scheduleContext string,
	history []Message,
	userMessage string,
) (*Proposal, error) {

	session := g.model.StartChat()
	session.History = toGenaiHistory(history)

	prompt := scheduleContext + "\n\n" + userMessage

	resp, err := session.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini send: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return &Proposal{}, nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			sb.WriteString(string(p))
		case genai.FunctionCall:
			if p.Name == ActionCreateAppointment {
				return &Proposal{Intent: intentFromArgs(p.Args)}, nil
			}
		}
	}

	return &Proposal{Reply: sb.String()}, nil
}

func toGenaiHistory(history []Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := m.Role
		if role != "model" {
			role = "user"
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return out
}

func intentFromArgs(args map[string]any) *Intent {
	in := &Intent{Action: ActionCreateAppointment}

	if v, ok := args["date"].(string); ok {
		in.Date = v
	}
	if v, ok := args["time"].(string); ok {
		in.Time = v
	}
	if v, ok := args["service_id"].(float64); ok {
		in.ServiceID = uint(v)
	}
	if v, ok := args["professional_id"].(float64); ok {
		in.ProfessionalID = uint(v)
	}
	if v, ok := args["notes"].(string); ok {
		in.Notes = v
	}

	return in
}

var _ IntentProposer = (*GeminiProposer)(nil)
