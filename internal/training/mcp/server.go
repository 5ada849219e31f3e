package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/olivermegias/trainingtop/internal/training/progress"
)

// NewServer builds an MCP server with training progress tools: exercise
// progress, routine progress, muscle distribution, period stats.
// Used by the main backend when mounting MCP at /mcp (internal/server).
func NewServer(analyzer *progress.Analyzer) *mcp.Server {
	h := NewHandler(analyzer)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "trainingtop-progress",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_progress",
		Description: "Returns per-exercise strength trends for a user: history of max/avg weight and reps, percent change and trend classification. Args: user_id; optional: history_limit (default 10). Use when you need to see how an exercise has progressed.",
	}, h.GetExerciseProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_routine_progress",
		Description: "Returns per-day performance for one routine: session counts, average duration/satisfaction/effort/difficulty/weight per day, plus a chronological timeline. Args: user_id, routine_id. Use when analyzing how a routine is going.",
	}, h.GetRoutineProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_muscle_distribution",
		Description: "Returns workload per muscle group over the user's recent sessions: exercise touches, completed sets, reps, max weight, average satisfaction. Arg: user_id. Use when you want to see training balance across muscle groups.",
	}, h.GetMuscleDistributionTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_period_stats",
		Description: "Returns summary stats for a time window: sessions, total duration, exercises, completed sets, average satisfaction and effort. Args: user_id; optional: period (week, month, year; default month). Use for overall activity summaries.",
	}, h.GetPeriodStatsTool())

	return s
}
