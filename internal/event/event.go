// Package event models lifecycle events and the variable namespaces they
// expose to hook commands.
//
// Each event type carries exactly one payload namespace (task.*, plan.* or
// git.*). Contexts are built from typed payloads and flattened into a string
// map only at substitution time, so a task event can never leak plan or git
// variables into a hook command.
package event

import (
	"fmt"
	"sort"
	"strings"
)

// Type identifies a lifecycle event kind.
type Type string

// Lifecycle event types.
const (
	TaskCreation        Type = "task_creation"
	TaskStatusChange    Type = "task_status_change"
	TaskArchival        Type = "task_archival"
	PlanCreation        Type = "plan_creation"
	PlanUpdate          Type = "plan_update"
	GitCommit           Type = "git_commit"
	GitPush             Type = "git_push"
	DocumentationUpdate Type = "documentation_update"
	ProjectMilestone    Type = "project_milestone"
)

// Types lists every known event type in stable order.
var Types = []Type{
	TaskCreation,
	TaskStatusChange,
	TaskArchival,
	PlanCreation,
	PlanUpdate,
	GitCommit,
	GitPush,
	DocumentationUpdate,
	ProjectMilestone,
}

// Known reports whether t is a recognized event type.
func (t Type) Known() bool {
	for _, k := range Types {
		if t == k {
			return true
		}
	}
	return false
}

// Namespace returns the variable namespace this event type exposes:
// "task", "plan" or "git".
func (t Type) Namespace() string {
	switch t {
	case TaskCreation, TaskStatusChange, TaskArchival:
		return "task"
	case PlanCreation, PlanUpdate, DocumentationUpdate, ProjectMilestone:
		return "plan"
	case GitCommit, GitPush:
		return "git"
	}
	return ""
}

// Gated reports whether the event type supports before/after trigger
// direction. Only git events guard an external action that can be blocked.
func (t Type) Gated() bool {
	return t == GitCommit || t == GitPush
}

// Trigger direction values for gated event types.
const (
	TriggerBefore = "before"
	TriggerAfter  = "after"
)

// Status trigger values for task_status_change.
var statusTriggers = []string{"pending", "inprogress", "completed", "failed"}

// ValidTrigger reports whether trigger is acceptable for event type t.
// Enumerated families (status changes, gated git events) are checked
// strictly; other types accept any non-empty trigger.
func ValidTrigger(t Type, trigger string) bool {
	if trigger == "" {
		return false
	}
	switch {
	case t == TaskStatusChange:
		for _, s := range statusTriggers {
			if trigger == s {
				return true
			}
		}
		return false
	case t.Gated():
		return trigger == TriggerBefore || trigger == TriggerAfter
	}
	return true
}

// TaskPayload holds the task.* variables.
type TaskPayload struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	CommitType string `json:"commit_type"`
	Feature    string `json:"feature"`
	Path       string `json:"path"`
}

// PlanPayload holds the plan.* variables.
type PlanPayload struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

// GitPayload holds the git.* variables.
type GitPayload struct {
	CommitHash string `json:"commit_hash"`
	Branch     string `json:"branch"`
	Remote     string `json:"remote"`
}

// Payload is the union of all namespaces. Exactly one field matching the
// event type's namespace may be set; the others must be nil.
type Payload struct {
	Task *TaskPayload `json:"task,omitempty"`
	Plan *PlanPayload `json:"plan,omitempty"`
	Git  *GitPayload  `json:"git,omitempty"`
}

// Context is one lifecycle event instance: the values hooks are matched
// against plus the flattened variable map exposed to substitution.
type Context struct {
	Type    Type
	Trigger string
	vars    map[string]string
}

// Build assembles a Context for the given event type and trigger.
// A payload carrying a namespace foreign to the event type is a programmer
// error and fails immediately.
func Build(t Type, trigger string, p Payload) (Context, error) {
	if !t.Known() {
		return Context{}, fmt.Errorf("unknown event type %q", t)
	}
	if !ValidTrigger(t, trigger) {
		return Context{}, fmt.Errorf("invalid trigger %q for event type %q", trigger, t)
	}

	ns := t.Namespace()
	if p.Task != nil && ns != "task" {
		return Context{}, fmt.Errorf("event type %q cannot carry task variables", t)
	}
	if p.Plan != nil && ns != "plan" {
		return Context{}, fmt.Errorf("event type %q cannot carry plan variables", t)
	}
	if p.Git != nil && ns != "git" {
		return Context{}, fmt.Errorf("event type %q cannot carry git variables", t)
	}

	vars := make(map[string]string)
	switch ns {
	case "task":
		if p.Task != nil {
			vars["task.id"] = p.Task.ID
			vars["task.title"] = p.Task.Title
			vars["task.status"] = p.Task.Status
			vars["task.commit_type"] = p.Task.CommitType
			vars["task.feature"] = p.Task.Feature
			vars["task.path"] = p.Task.Path
		}
	case "plan":
		if p.Plan != nil {
			vars["plan.title"] = p.Plan.Title
			vars["plan.path"] = p.Plan.Path
		}
	case "git":
		if p.Git != nil {
			vars["git.commit_hash"] = p.Git.CommitHash
			vars["git.branch"] = p.Git.Branch
			vars["git.remote"] = p.Git.Remote
		}
	}

	return Context{Type: t, Trigger: trigger, vars: vars}, nil
}

// Merge returns a copy of the context with the given ns.field overrides
// applied. Keys outside the event's namespace are rejected.
func (c Context) Merge(overrides map[string]string) (Context, error) {
	ns := c.Type.Namespace()
	merged := make(map[string]string, len(c.vars)+len(overrides))
	for k, v := range c.vars {
		merged[k] = v
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !strings.HasPrefix(k, ns+".") {
			return Context{}, fmt.Errorf("variable %q is outside the %s namespace of event type %q", k, ns, c.Type)
		}
		merged[k] = overrides[k]
	}
	return Context{Type: c.Type, Trigger: c.Trigger, vars: merged}, nil
}

// Lookup returns the value of a dotted variable name.
func (c Context) Lookup(name string) (string, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Vars returns a copy of the flattened variable map.
func (c Context) Vars() map[string]string {
	out := make(map[string]string, len(c.vars))
	for k, v := range c.vars {
		out[k] = v
	}
	return out
}

// BeforeClass reports whether this event instance gates a pending action:
// a failed hook must block that action and halt the batch.
func (c Context) BeforeClass() bool {
	return c.Type.Gated() && c.Trigger == TriggerBefore
}
