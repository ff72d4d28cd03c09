package host

import (
	"context"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// DefaultModel is used when FFA_MODEL is unset.
const DefaultModel = "gpt-5"

// OpenAIClient adapts the OpenAI Responses API to the Client interface.
// Continuation turns use previous_response_id, so only tool outputs travel
// on the wire; web search is declared as a host-native tool.
type OpenAIClient struct {
	client openai.Client
	model  shared.ResponsesModel
}

// NewOpenAI creates a Responses API client. An empty model selects
// DefaultModel; an empty apiKey defers to the SDK's environment lookup.
func NewOpenAI(apiKey, model string) *OpenAIClient {
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIClient{
		client: openai.NewClient(opts...),
		model:  shared.ResponsesModel(model),
	}
}

// CreateResponse submits one turn and maps the SDK response onto the
// neutral types.
func (c *OpenAIClient) CreateResponse(ctx context.Context, req Request) (*Response, error) {
	params := responses.ResponseNewParams{
		Model:        c.model,
		Instructions: openai.String(req.Instructions),
		Tools:        buildTools(req.Tools),
	}
	if req.PreviousResponseID != "" {
		params.PreviousResponseID = openai.String(req.PreviousResponseID)
		items := make(responses.ResponseInputParam, 0, len(req.ToolOutputs))
		for _, out := range req.ToolOutputs {
			items = append(items, responses.ResponseInputItemUnionParam{
				OfFunctionCallOutput: &responses.ResponseInputItemFunctionCallOutputParam{
					CallID: out.CallID,
					Output: out.Payload,
				},
			})
		}
		params.Input = responses.ResponseNewParamsInputUnion{OfInputItemList: items}
	} else {
		params.Input = responses.ResponseNewParamsInputUnion{OfString: openai.String(req.Prompt)}
	}

	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return nil, err
	}
	return mapResponse(resp), nil
}

func buildTools(specs []ToolSpec) []responses.ToolUnionParam {
	out := make([]responses.ToolUnionParam, 0, len(specs)+1)
	out = append(out, responses.ToolUnionParam{
		OfWebSearchPreview: &responses.WebSearchToolParam{
			Type: responses.WebSearchToolTypeWebSearchPreview,
		},
	})
	for _, s := range specs {
		out = append(out, responses.ToolUnionParam{
			OfFunction: &responses.FunctionToolParam{
				Name:        s.Name,
				Description: openai.String(s.Description),
				Parameters:  s.Parameters,
				Strict:      openai.Bool(false),
			},
		})
	}
	return out
}

func mapResponse(resp *responses.Response) *Response {
	out := &Response{
		ID:   resp.ID,
		Text: resp.OutputText(),
		Usage: Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
		},
	}
	for _, item := range resp.Output {
		switch item.Type {
		case "function_call":
			out.Items = append(out.Items, OutputItem{
				Kind:         ItemToolCall,
				CallID:       item.CallID,
				ToolName:     item.Name,
				RawArguments: item.Arguments,
			})
		case "web_search_call":
			out.Items = append(out.Items, OutputItem{
				Kind:     ItemHostToolCall,
				HostTool: WebSearchHostTool,
				Status:   string(item.Status),
			})
		case "message":
			var text strings.Builder
			for _, c := range item.Content {
				if c.Type == "output_text" {
					text.WriteString(c.Text)
				}
			}
			out.Items = append(out.Items, OutputItem{Kind: ItemMessage, Text: text.String()})
		}
	}
	return out
}

// WebSearchHostTool names the host-native capability in output items.
const WebSearchHostTool = "web_search"
