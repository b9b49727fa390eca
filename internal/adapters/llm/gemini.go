package llm

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/parksandresorts/backster-agent/internal/domain"
)

// GeminiClient implements domain.LLMClient on top of Vertex AI (Gemini),
// with the capability registry exposed as function declarations.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(ctx context.Context, projectID, location, modelName string) (*GeminiClient, error) {
	if projectID == "" || location == "" {
		return nil, fmt.Errorf("projectID and location must be set")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// Generate implements domain.LLMClient.
func (g *GeminiClient) Generate(
	ctx context.Context,
	sctx domain.SessionContext,
	turns []domain.Turn,
	specs []domain.CapabilitySpec,
) (*domain.ModelReply, error) {
	system := BuildSystemPrompt(sctx, capabilityNames(specs))

	contents := turnsToContents(turns)

	temp := float32(0.2)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       &temp,
		MaxOutputTokens:   4000,
		Tools: []*genai.Tool{
			{FunctionDeclarations: declarations(specs)},
		},
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("vertex generate content: %w", err)
	}

	reply := &domain.ModelReply{Text: res.Text()}
	for _, fc := range res.FunctionCalls() {
		id := fc.ID
		if id == "" {
			// Vertex does not always assign call ids; the result turn still
			// needs one for correlation.
			id = uuid.NewString()
		}
		reply.Calls = append(reply.Calls, domain.CapabilityCall{
			ID:   domain.CallID(id),
			Name: fc.Name,
			Args: fc.Args,
		})
	}

	return reply, nil
}

// turnsToContents replays the conversation timeline as genai contents,
// including earlier function calls and their responses.
func turnsToContents(turns []domain.Turn) []*genai.Content {
	var contents []*genai.Content
	for _, t := range turns {
		switch t.Kind {
		case domain.TurnUser:
			contents = append(contents, genai.NewContentFromText(t.Text, genai.RoleUser))

		case domain.TurnAssistant:
			var parts []*genai.Part
			if t.Text != "" {
				parts = append(parts, genai.NewPartFromText(t.Text))
			}
			for _, c := range t.Calls {
				parts = append(parts, &genai.Part{
					FunctionCall: &genai.FunctionCall{
						ID:   string(c.ID),
						Name: c.Name,
						Args: c.Args,
					},
				})
			}
			contents = append(contents, &genai.Content{Role: genai.RoleModel, Parts: parts})

		case domain.TurnCapabilityResult:
			if t.Result == nil {
				continue
			}
			contents = append(contents, &genai.Content{
				Role: genai.RoleUser,
				Parts: []*genai.Part{{
					FunctionResponse: &genai.FunctionResponse{
						ID:       string(t.Result.CallID),
						Name:     t.Result.Name,
						Response: map[string]any{"content": t.Result.Content},
					},
				}},
			})
		}
	}
	return contents
}

func declarations(specs []domain.CapabilitySpec) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(specs))
	for _, spec := range specs {
		props := make(map[string]*genai.Schema, len(spec.Parameters))
		var required []string
		for _, p := range spec.Parameters {
			props[p.Name] = &genai.Schema{
				Type:        genai.TypeString,
				Description: p.Description,
				Enum:        p.Enum,
			}
			if p.Required {
				required = append(required, p.Name)
			}
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        spec.Name,
			Description: spec.Description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: props,
				Required:   required,
			},
		})
	}
	return decls
}

func capabilityNames(specs []domain.CapabilitySpec) []string {
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.Name)
	}
	return names
}
