package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/domain/types"
)

// client implements Service interface
type client struct {
	llmClient gollem.LLMClient
}

// Option is a functional option for client configuration
type Option func(*client)

// New creates a new suggestion service with the provided LLM client
func New(llmClient gollem.LLMClient, opts ...Option) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	c := &client{
		llmClient: llmClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Suggest asks the model for a structured assessment of the activity
func (c *client) Suggest(ctx context.Context, input Input) (*model.Suggestion, error) {
	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(buildResponseSchema()),
		gollem.WithSessionSystemPrompt(buildSystemPrompt()),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.Generate(ctx, []gollem.Input{gollem.Text(buildUserPrompt(input))})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate content from LLM",
			goerr.V("activity", input.ActivityName))
	}
	if resp == nil || len(resp.Texts) == 0 {
		return nil, goerr.New("LLM returned no text", goerr.V("activity", input.ActivityName))
	}

	var suggestion model.Suggestion
	if err := json.Unmarshal([]byte(resp.Texts[0]), &suggestion); err != nil {
		return nil, goerr.Wrap(err, "failed to parse LLM response", goerr.V("response", resp.Texts[0]))
	}

	if !suggestion.RTO.IsValid() {
		return nil, goerr.New("LLM suggested an unknown RTO", goerr.V("rto", suggestion.RTO))
	}
	if !suggestion.RPO.IsValid() {
		return nil, goerr.New("LLM suggested an unknown RPO", goerr.V("rpo", suggestion.RPO))
	}
	if suggestion.SuggestedResources == nil {
		suggestion.SuggestedResources = []string{}
	}

	return &suggestion, nil
}

func buildSystemPrompt() string {
	var sb strings.Builder

	sb.WriteString("You are an expert Business Continuity Consultant certified in ISO 22301.\n\n")
	sb.WriteString("## Instructions:\n\n")
	sb.WriteString("Provide a structured assessment of the business activity including:\n")
	sb.WriteString("1. A professional description of the activity.\n")
	sb.WriteString("2. A recommended Recovery Time Objective (RTO) and Recovery Point Objective (RPO) based on industry standards for this type of activity.\n")
	sb.WriteString("3. A brief narrative describing the potential impact if this activity is disrupted for 24 hours.\n")
	sb.WriteString("4. A list of 3-5 typical resources (IT systems, people, facilities) required to perform this activity.\n")

	return sb.String()
}

func buildUserPrompt(input Input) string {
	return fmt.Sprintf("Analyze the business activity %q for the department %q.", input.ActivityName, input.Department)
}

func buildResponseSchema() *gollem.Parameter {
	rtos := make([]string, 0, len(types.AllRTOs()))
	for _, v := range types.AllRTOs() {
		rtos = append(rtos, v.String())
	}
	rpos := make([]string, 0, len(types.AllRPOs()))
	for _, v := range types.AllRPOs() {
		rpos = append(rpos, v.String())
	}

	return &gollem.Parameter{
		Title:       "ActivityAssessment",
		Description: "Business impact analysis draft for one activity",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"suggestedDescription": {
				Type:        gollem.TypeString,
				Description: "A professional description of the activity",
				Required:    true,
			},
			"suggestedRTO": {
				Type:        gollem.TypeString,
				Description: "Recommended recovery time objective",
				Required:    true,
				Enum:        rtos,
			},
			"suggestedRPO": {
				Type:        gollem.TypeString,
				Description: "Recommended recovery point objective",
				Required:    true,
				Enum:        rpos,
			},
			"impactNarrative": {
				Type:        gollem.TypeString,
				Description: "Impact if the activity is disrupted for 24 hours",
				Required:    true,
			},
			"suggestedResources": {
				Type:        gollem.TypeArray,
				Description: "Typical resources required to perform the activity",
				Required:    true,
				Items: &gollem.Parameter{
					Type: gollem.TypeString,
				},
			},
		},
	}
}
