// ABOUTME: MCP resource implementations for the coach session store.
// ABOUTME: Provides coach://today, coach://history, and coach://plan resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "coach://today",
		Name:        "Today's Activity",
		Description: "Today's food log, step count, and cardio entries",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "coach://history",
		Name:        "Workout History",
		Description: "Last 10 completed workout sessions",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "coach://plan",
		Name:        "Workout Plan",
		Description: "The active weekly workout plan",
		MIMEType:    "application/json",
	}, s.handlePlanResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	foodLog := s.store.FoodLog()
	calories, macros := foodLog.Totals()

	return jsonResource(req.Params.URI, map[string]any{
		"date":          foodLog.Date,
		"steps":         s.store.DailySteps(),
		"foodLog":       foodLog.Log,
		"totalCalories": calories,
		"totalMacros":   macros,
		"cardioLogs":    s.store.CardioLogs(),
	})
}

func (s *Server) handleHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	history := s.store.History()
	if len(history) > 10 {
		history = history[:10]
	}
	return jsonResource(req.Params.URI, history)
}

func (s *Server) handlePlanResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	plan := s.store.Plan()
	if plan == nil {
		return jsonResource(req.Params.URI, map[string]any{"message": "No workout plan set."})
	}
	return jsonResource(req.Params.URI, plan)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: uri, MIMEType: "application/json", Text: string(data)},
		},
	}, nil
}
