// Package suggest resolves a free-text goal into a short list of task
// suggestions: a remote generation attempt first, then a fixed keyword table.
package suggest

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/utils"
)

// MaxSuggestions bounds every result.
const MaxSuggestions = 4

const DefaultTimeout = 15 * time.Second

// Source tells which tier produced a result.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

type Result struct {
	Suggestions []dom.Suggestion `json:"items"`
	Source      Source           `json:"source"`
}

// tierResult is the outcome of one resolution tier: ok with suggestions, or
// a reason to fall through.
type tierResult struct {
	ok          bool
	suggestions []dom.Suggestion
	reason      string
}

func fallThrough(format string, args ...any) tierResult {
	return tierResult{reason: fmt.Sprintf(format, args...)}
}

// Engine is safe for concurrent use; calls are independent.
type Engine struct {
	gen     Generator
	timeout time.Duration
	logger  *log.Logger
}

// NewEngine creates an Engine. A nil gen skips the remote tier entirely.
// A nil logger discards diagnostics.
func NewEngine(gen Generator, timeout time.Duration, logger *log.Logger) *Engine {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{gen: gen, timeout: timeout, logger: logger}
}

// RemoteEnabled reports whether the remote tier is configured.
func (e *Engine) RemoteEnabled() bool {
	return e.gen != nil
}

// Resolve never fails: the result holds 1 to MaxSuggestions suggestions.
func (e *Engine) Resolve(ctx context.Context, goal string) Result {
	if e.gen != nil {
		r := e.remoteTier(ctx, goal)
		if r.ok {
			return Result{Suggestions: r.suggestions, Source: SourceRemote}
		}
		e.logger.Printf("suggest: remote tier failed for %q: %s", utils.Truncate(goal, 60), r.reason)
	}
	return Result{Suggestions: e.fallbackTier(goal).suggestions, Source: SourceFallback}
}

// Suggest returns only the suggestions of Resolve.
func (e *Engine) Suggest(ctx context.Context, goal string) []dom.Suggestion {
	return e.Resolve(ctx, goal).Suggestions
}

func (e *Engine) remoteTier(ctx context.Context, goal string) tierResult {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	text, err := e.gen.Generate(ctx, BuildPrompt(goal))
	if err != nil {
		return fallThrough("generate: %v", err)
	}
	list, err := parseSuggestions(text, MaxSuggestions)
	if err != nil {
		return fallThrough("parse: %v", err)
	}
	return tierResult{ok: true, suggestions: list}
}

func (e *Engine) fallbackTier(goal string) tierResult {
	return tierResult{ok: true, suggestions: Fallback(goal)}
}

// BuildPrompt asks for exactly four title/description objects.
func BuildPrompt(goal string) string {
	return fmt.Sprintf(`Generate exactly 4 task suggestions for this goal: %q

Return ONLY a JSON array with exactly 4 objects. Each object must have "title" and "description" fields.
[
  {"title":"Task 1","description":"Description 1"},
  {"title":"Task 2","description":"Description 2"},
  {"title":"Task 3","description":"Description 3"},
  {"title":"Task 4","description":"Description 4"}
]`, goal)
}
