package knapsack

import (
	"encoding/json"
	"io"
	"time"
)

// EngineLogger provides dual-format logging for the Balknap solve: console
// output is human-readable, file output is JSONL for later analysis.
// Mirrors BLSLogger from the layout optimizer.
type EngineLogger struct {
	console   io.Writer // human-readable output (can be nil)
	file      io.Writer // JSONL structured output (can be nil)
	startTime time.Time
}

// NewEngineLogger creates a logger with separate console and file outputs.
// Either writer can be nil to disable that output channel.
func NewEngineLogger(console, file io.Writer) *EngineLogger {
	return &EngineLogger{console: console, file: file, startTime: time.Now()}
}

// LogEvent is a single JSONL entry: one DP iteration, bound refresh, or
// recursion step.
type LogEvent struct {
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
	ElapsedMs int64     `json:"elapsed_ms"`

	Item        *int   `json:"item,omitempty"`
	StatesCount *int   `json:"states_count,omitempty"`
	LowerBound  *int64 `json:"lower_bound,omitempty"`
	UpperBound  *int64 `json:"upper_bound,omitempty"`

	RecursionDepth *int `json:"recursion_depth,omitempty"`

	AuxTask string `json:"aux_task,omitempty"` // "surrelax" / "greedynlogn"
	AuxUB   *int64 `json:"aux_ub,omitempty"`

	Message string `json:"message,omitempty"`
}

func (l *EngineLogger) writeJSON(event LogEvent) {
	if l.file == nil {
		return
	}
	event.Timestamp = time.Now()
	event.ElapsedMs = time.Since(l.startTime).Milliseconds()
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	data = append(data, '\n')
	_, _ = l.file.Write(data)
}

// LogStart logs the beginning of a Solve call.
func (l *EngineLogger) LogStart(n int, capacity int64, lb, ub int64) {
	if l.console != nil {
		MustFprintf(l.console, "balknap: %d items, capacity %d, lb %d, ub %d\n", n, capacity, lb, ub)
	}
	l.writeJSON(LogEvent{Event: "start", LowerBound: &lb, UpperBound: &ub, Message: "solve started"})
}

// LogIteration logs one main-loop iteration (item t processed, state map size).
func (l *EngineLogger) LogIteration(t, statesCount int, lb, ub int64) {
	if l.console != nil {
		MustFprintf(l.console, "t=%d states=%d lb=%d ub=%d\n", t, statesCount, lb, ub)
	}
	l.writeJSON(LogEvent{Event: "iteration", Item: &t, StatesCount: &statesCount, LowerBound: &lb, UpperBound: &ub})
}

// LogAuxBound logs an asynchronous bound-refresh result.
func (l *EngineLogger) LogAuxBound(task string, ub int64) {
	if l.console != nil {
		MustFprintf(l.console, "%s refined ub=%d\n", task, ub)
	}
	l.writeJSON(LogEvent{Event: "aux_bound", AuxTask: task, AuxUB: &ub})
}

// LogRecursion logs a residual-instance recursion step.
func (l *EngineLogger) LogRecursion(depth int, n int, lb, ub int64) {
	if l.console != nil {
		MustFprintf(l.console, "recurse depth=%d residual_n=%d lb=%d ub=%d\n", depth, n, lb, ub)
	}
	l.writeJSON(LogEvent{Event: "recursion", RecursionDepth: &depth, StatesCount: &n, LowerBound: &lb, UpperBound: &ub})
}

// LogEnd logs the final result of a Solve call.
func (l *EngineLogger) LogEnd(lb, ub int64, recursiveCalls int) {
	if l.console != nil {
		MustFprintf(l.console, "done: profit=%d ub=%d recursive_calls=%d\n", lb, ub, recursiveCalls)
	}
	l.writeJSON(LogEvent{Event: "end", LowerBound: &lb, UpperBound: &ub, Message: "solve finished"})
}
