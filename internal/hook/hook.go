package hook

import (
	"strings"

	"github.com/magicvibe/vibehook/internal/event"
)

// Tier identifies which directory a hook was loaded from. System-wide hooks
// order before user-template hooks at equal priority.
type Tier string

// Source tiers.
const (
	TierSystem Tier = "system-wide"
	TierUser   Tier = "user-template"
)

// DefaultPriority applies when a hook file omits the priority field.
// It is deliberately high so explicitly prioritized hooks run first.
const DefaultPriority = 100

// Definition is one parsed *.hook.md file.
//
// Invalid hooks are kept (with Problem set) instead of being discarded so
// they stay inspectable and can be recorded as skipped-invalid at dispatch
// time.
type Definition struct {
	ID       string // filename without the .hook.md suffix
	File     string // path the hook was loaded from
	FileName string // base filename, the sort tie-breaker
	Tier     Tier

	Type     event.Type
	Trigger  string
	Priority int
	Enabled  bool
	Command  string
	Title    string // first heading of the body, if any

	Problem string // non-empty marks the hook invalid
}

// Valid reports whether the hook parsed cleanly and can be executed.
func (d Definition) Valid() bool {
	return d.Problem == ""
}

// HookFileSuffix is the filename pattern hook files must match.
const HookFileSuffix = ".hook.md"

// IsHookFile reports whether name looks like a hook definition file.
func IsHookFile(name string) bool {
	return strings.HasSuffix(name, HookFileSuffix)
}

// idFromFileName derives the hook id from its filename.
func idFromFileName(name string) string {
	return strings.TrimSuffix(name, HookFileSuffix)
}
