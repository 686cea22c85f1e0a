package hook

import (
	"sort"

	"github.com/magicvibe/vibehook/internal/event"
)

// Skip reasons recorded for hooks that matched an event but cannot run.
const (
	SkipDisabled = "skipped-disabled"
	SkipInvalid  = "skipped-invalid"
)

// Skip pairs a non-runnable hook with the reason it was excluded.
type Skip struct {
	Hook   Definition
	Reason string
}

// Selection is the outcome of matching a hook set against one event:
// the hooks to execute, in their total dispatch order, plus the hooks that
// matched but must be recorded as skipped.
type Selection struct {
	Run     []Definition
	Skipped []Skip
}

// Select filters hooks against the event context and sorts the runnable ones
// into their dispatch order.
//
// The order is total: priority ascending, then system-wide before
// user-template, then filename in case-sensitive ASCII order. Given identical
// inputs the returned sequence is identical across runs.
func Select(hooks []Definition, ctx event.Context) Selection {
	var sel Selection
	for _, h := range hooks {
		switch {
		case !h.Valid():
			// Invalid hooks are recorded for events they would have
			// matched; unparsed fields match everything because the
			// hook can never be scoped tighter.
			if matchesLoose(h, ctx) {
				sel.Skipped = append(sel.Skipped, Skip{Hook: h, Reason: SkipInvalid})
			}
		case h.Type != ctx.Type || h.Trigger != ctx.Trigger:
			// no match
		case !h.Enabled:
			sel.Skipped = append(sel.Skipped, Skip{Hook: h, Reason: SkipDisabled})
		default:
			sel.Run = append(sel.Run, h)
		}
	}

	sort.Slice(sel.Run, func(i, j int) bool {
		return Less(sel.Run[i], sel.Run[j])
	})
	return sel
}

// Less is the total dispatch order over hook definitions.
func Less(a, b Definition) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.Tier != b.Tier {
		return a.Tier == TierSystem
	}
	return a.FileName < b.FileName
}

func matchesLoose(h Definition, ctx event.Context) bool {
	if h.Type != "" && h.Type != ctx.Type {
		return false
	}
	if h.Trigger != "" && h.Trigger != ctx.Trigger {
		return false
	}
	return true
}
