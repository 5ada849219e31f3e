package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/olivermegias/trainingtop/internal/training/progress"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=mcp_test

// progressAnalyzer provides the progress views (for dependency injection and testing).
type progressAnalyzer interface {
	ExercisesProgress(ctx context.Context, userID string, historyLimit int) ([]progress.ExerciseProgress, error)
	RoutineProgress(ctx context.Context, userID, routineID string) (*progress.RoutineProgress, error)
	MuscleGroupDistribution(ctx context.Context, userID string) ([]progress.MuscleGroupStat, error)
	PeriodStats(ctx context.Context, userID string, period progress.Period) (*progress.PeriodStats, error)
}

// Handler handles MCP tool requests and responses: parses input, calls the analyzer, formats MCP result.
type Handler struct {
	analyzer progressAnalyzer
}

// NewHandler builds a handler with the given analyzer.
func NewHandler(analyzer progressAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
		IsError: true,
	}
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error()), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

// ExerciseProgressInput is the input for get_exercise_progress.
type ExerciseProgressInput struct {
	UserID       string `json:"user_id" jsonschema:"User id whose progress to compute"`
	HistoryLimit int    `json:"history_limit,omitempty" jsonschema:"History points per exercise (default 10)"`
}

// GetExerciseProgressTool returns the MCP tool handler for get_exercise_progress.
func (h *Handler) GetExerciseProgressTool() func(context.Context, *mcp.CallToolRequest, ExerciseProgressInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseProgressInput) (*mcp.CallToolResult, any, error) {
		if in.UserID == "" {
			return errorResult("user_id is required"), nil, nil
		}
		exercisesProgress, err := h.analyzer.ExercisesProgress(ctx, in.UserID, in.HistoryLimit)
		if err != nil {
			return errorResult("Error computing exercise progress: " + err.Error()), nil, nil
		}
		return jsonResult(exercisesProgress)
	}
}

// RoutineProgressInput is the input for get_routine_progress.
type RoutineProgressInput struct {
	UserID    string `json:"user_id" jsonschema:"User id whose progress to compute"`
	RoutineID string `json:"routine_id" jsonschema:"Routine id to compute per-day progress for"`
}

// GetRoutineProgressTool returns the MCP tool handler for get_routine_progress.
func (h *Handler) GetRoutineProgressTool() func(context.Context, *mcp.CallToolRequest, RoutineProgressInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RoutineProgressInput) (*mcp.CallToolResult, any, error) {
		if in.UserID == "" || in.RoutineID == "" {
			return errorResult("user_id and routine_id are required"), nil, nil
		}
		routineProgress, err := h.analyzer.RoutineProgress(ctx, in.UserID, in.RoutineID)
		if err != nil {
			return errorResult("Error computing routine progress: " + err.Error()), nil, nil
		}
		return jsonResult(routineProgress)
	}
}

// MuscleDistributionInput is the input for get_muscle_distribution.
type MuscleDistributionInput struct {
	UserID string `json:"user_id" jsonschema:"User id whose muscle distribution to compute"`
}

// GetMuscleDistributionTool returns the MCP tool handler for get_muscle_distribution.
func (h *Handler) GetMuscleDistributionTool() func(context.Context, *mcp.CallToolRequest, MuscleDistributionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in MuscleDistributionInput) (*mcp.CallToolResult, any, error) {
		if in.UserID == "" {
			return errorResult("user_id is required"), nil, nil
		}
		muscleStats, err := h.analyzer.MuscleGroupDistribution(ctx, in.UserID)
		if err != nil {
			return errorResult("Error computing muscle distribution: " + err.Error()), nil, nil
		}
		return jsonResult(muscleStats)
	}
}

// PeriodStatsInput is the input for get_period_stats.
type PeriodStatsInput struct {
	UserID string `json:"user_id" jsonschema:"User id whose stats to compute"`
	Period string `json:"period,omitempty" jsonschema:"Lookback window: week, month or year (default month)"`
}

// GetPeriodStatsTool returns the MCP tool handler for get_period_stats.
func (h *Handler) GetPeriodStatsTool() func(context.Context, *mcp.CallToolRequest, PeriodStatsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PeriodStatsInput) (*mcp.CallToolResult, any, error) {
		if in.UserID == "" {
			return errorResult("user_id is required"), nil, nil
		}
		period, err := progress.ParsePeriod(in.Period)
		if err != nil {
			return errorResult("Invalid period: use week, month or year"), nil, nil
		}
		periodStats, err := h.analyzer.PeriodStats(ctx, in.UserID, period)
		if err != nil {
			return errorResult("Error computing period stats: " + err.Error()), nil, nil
		}
		return jsonResult(periodStats)
	}
}
