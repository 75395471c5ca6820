package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/yoockh/careercounsel/internal/services"
	"github.com/yoockh/careercounsel/internal/utils"
)

type toolset struct {
	careers services.CareerService
	advisor services.AdvisorService
}

func prop(typ, desc string) map[string]interface{} {
	return map[string]interface{}{"type": typ, "description": desc}
}

func newTool(name, desc string, props map[string]interface{}, required ...string) mcp.Tool {
	tool := mcp.NewTool(name, mcp.WithDescription(desc))
	tool.InputSchema = mcp.ToolInputSchema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
	return tool
}

func registerTools(s *server.MCPServer, t *toolset) {
	textProp := map[string]interface{}{"text": prop("string", "User text to analyze")}

	s.AddTool(newTool("get_career", "Get a career with its skills, roadmap and learning resources",
		map[string]interface{}{"title": prop("string", "Exact career title, e.g. Data Scientist")}, "title"), t.getCareer)
	s.AddTool(newTool("search_careers", "Search careers matching any of the keywords, most relevant first",
		map[string]interface{}{
			"keywords": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}, "description": "Keywords to match"},
			"limit":    prop("integer", "Max results (default 3)"),
		}, "keywords"), t.searchCareers)
	s.AddTool(newTool("extract_keywords", "Extract interest keywords per category", textProp, "text"), t.extractKeywords)
	s.AddTool(newTool("detect_intent", "Classify the intent of a message", textProp, "text"), t.detectIntent)
	s.AddTool(newTool("analyze_sentiment", "Score the sentiment and emotion indicators of a message", textProp, "text"), t.analyzeSentiment)
	s.AddTool(newTool("recommend_careers", "Recommend career titles for a message",
		map[string]interface{}{
			"text":  prop("string", "User text describing interests"),
			"limit": prop("integer", "Max titles (default 3)"),
		}, "text"), t.recommendCareers)
}

func arguments(request mcp.CallToolRequest) (map[string]interface{}, bool) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	return args, ok
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func errorResult(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(utils.PublicMessage(err)), nil
}

func intArg(args map[string]interface{}, key string) int {
	if v, ok := args[key].(float64); ok && v > 0 {
		return int(v)
	}
	return 0
}

func (t *toolset) getCareer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}
	title, _ := args["title"].(string)
	rec, err := t.careers.GetByTitle(ctx, title)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(rec)
}

func (t *toolset) searchCareers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}
	var keywords []string
	switch v := args["keywords"].(type) {
	case []interface{}:
		for _, k := range v {
			if s, ok := k.(string); ok {
				keywords = append(keywords, s)
			}
		}
	case string:
		keywords = strings.Split(v, ",")
	}
	out, err := t.careers.Search(ctx, keywords, intArg(args, "limit"))
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(out)
}

func (t *toolset) text(request mcp.CallToolRequest) (string, bool) {
	args, ok := arguments(request)
	if !ok {
		return "", false
	}
	text, ok := args["text"].(string)
	return text, ok
}

func (t *toolset) extractKeywords(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, ok := t.text(request)
	if !ok {
		return mcp.NewToolResultError("text is required"), nil
	}
	return jsonResult(t.advisor.Keywords(text))
}

func (t *toolset) detectIntent(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, ok := t.text(request)
	if !ok {
		return mcp.NewToolResultError("text is required"), nil
	}
	return mcp.NewToolResultText(string(t.advisor.Intent(text))), nil
}

func (t *toolset) analyzeSentiment(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, ok := t.text(request)
	if !ok {
		return mcp.NewToolResultError("text is required"), nil
	}
	return jsonResult(t.advisor.Sentiment(text))
}

func (t *toolset) recommendCareers(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}
	text, _ := args["text"].(string)
	kw := t.advisor.Keywords(text)
	sent := t.advisor.Sentiment(text).Score.Sentiment
	return jsonResult(t.advisor.Recommend(kw, sent, intArg(args, "limit")))
}
