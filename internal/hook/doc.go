// Package hook loads, validates, and selects hook definitions.
//
// A hook is one *.hook.md file: YAML front matter between "---" delimiters
// followed by a Markdown body containing exactly one fenced code block, the
// shell command template.
//
//	---
//	type: task_status_change
//	trigger: completed
//	priority: 5
//	enabled: true
//	---
//	# Notify on completion
//	Sends a desktop notification when a task completes.
//	```bash
//	notify-send "Task {{task.id}} done: {{task.title}}"
//	```
//
// Hooks live in two tiers: system-wide (rules/hooks) and user-template
// (ai/hooks). Loading never fails on a malformed file; the definition is
// flagged with a Problem instead so the dispatcher can record it as
// skipped-invalid and the check command can report it.
//
// # Selection
//
// A hook runs for an event when it is valid, enabled, and its type and
// trigger both equal the event's. Matching hooks are sorted by priority
// (lower first), then tier (system-wide first), then filename — a total,
// deterministic order.
package hook
