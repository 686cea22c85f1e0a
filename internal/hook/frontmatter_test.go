package hook

import (
	"strings"
	"testing"

	"github.com/magicvibe/vibehook/internal/event"
)

const validHook = `---
type: task_status_change
trigger: completed
priority: 5
enabled: true
---
# Notify on completion

Sends a notification when a task completes.

` + "```bash\nnotify-send \"done {{task.id}}\"\n```\n"

func TestParse_Valid(t *testing.T) {
	def := Parse("notify.hook.md", "/x/notify.hook.md", TierSystem, []byte(validHook))

	if !def.Valid() {
		t.Fatalf("expected valid hook, got problem: %s", def.Problem)
	}
	if def.ID != "notify" {
		t.Errorf("ID = %q, want notify", def.ID)
	}
	if def.Type != event.TaskStatusChange {
		t.Errorf("Type = %q", def.Type)
	}
	if def.Trigger != "completed" {
		t.Errorf("Trigger = %q", def.Trigger)
	}
	if def.Priority != 5 {
		t.Errorf("Priority = %d, want 5", def.Priority)
	}
	if !def.Enabled {
		t.Error("Enabled = false, want true")
	}
	if def.Command != `notify-send "done {{task.id}}"` {
		t.Errorf("Command = %q", def.Command)
	}
	if def.Title != "Notify on completion" {
		t.Errorf("Title = %q", def.Title)
	}
}

func TestParse_Defaults(t *testing.T) {
	content := "---\ntype: git_push\ntrigger: before\n---\n```sh\ngit diff --check\n```\n"
	def := Parse("lint.hook.md", "lint.hook.md", TierUser, []byte(content))

	if !def.Valid() {
		t.Fatalf("unexpected problem: %s", def.Problem)
	}
	if !def.Enabled {
		t.Error("enabled must default to true")
	}
	if def.Priority != DefaultPriority {
		t.Errorf("Priority = %d, want default %d", def.Priority, DefaultPriority)
	}
}

func TestParse_ExplicitlyDisabledStaysLoaded(t *testing.T) {
	content := "---\ntype: git_push\ntrigger: before\nenabled: false\n---\n```sh\necho hi\n```\n"
	def := Parse("off.hook.md", "off.hook.md", TierUser, []byte(content))

	if !def.Valid() {
		t.Fatalf("disabled hook must still be valid, got problem: %s", def.Problem)
	}
	if def.Enabled {
		t.Error("Enabled = true, want false")
	}
	if def.Command == "" {
		t.Error("disabled hook must keep its command for inspection")
	}
}

func TestParse_Problems(t *testing.T) {
	tests := []struct {
		name    string
		content string
		problem string // substring of the expected problem
	}{
		{
			name:    "no front matter",
			content: "# just a doc\n```sh\necho\n```\n",
			problem: "missing front matter",
		},
		{
			name:    "unterminated front matter",
			content: "---\ntype: git_push\ntrigger: before\n",
			problem: "unterminated front matter",
		},
		{
			name:    "missing type",
			content: "---\ntrigger: before\n---\n```sh\necho\n```\n",
			problem: "missing required front matter field: type",
		},
		{
			name:    "unknown type",
			content: "---\ntype: task_exploded\ntrigger: before\n---\n```sh\necho\n```\n",
			problem: "unknown event type",
		},
		{
			name:    "missing trigger",
			content: "---\ntype: git_push\n---\n```sh\necho\n```\n",
			problem: "missing required front matter field: trigger",
		},
		{
			name:    "invalid trigger for type",
			content: "---\ntype: task_status_change\ntrigger: exploded\n---\n```sh\necho\n```\n",
			problem: "invalid trigger",
		},
		{
			name:    "zero command blocks",
			content: "---\ntype: git_push\ntrigger: before\n---\nno commands here\n",
			problem: "no fenced command block",
		},
		{
			name:    "two command blocks",
			content: "---\ntype: git_push\ntrigger: before\n---\n```sh\na\n```\n```sh\nb\n```\n",
			problem: "exactly one fenced command block",
		},
		{
			name:    "bad yaml",
			content: "---\ntype: [unclosed\n---\n```sh\necho\n```\n",
			problem: "invalid front matter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := Parse("x.hook.md", "x.hook.md", TierSystem, []byte(tt.content))
			if def.Valid() {
				t.Fatal("expected invalid hook")
			}
			if !strings.Contains(def.Problem, tt.problem) {
				t.Errorf("Problem = %q, want substring %q", def.Problem, tt.problem)
			}
		})
	}
}

func TestExtractCommand_LanguageTagIgnored(t *testing.T) {
	cmd, blocks := extractCommand("```python\nprint('hi')\n```\n")
	if blocks != 1 {
		t.Fatalf("blocks = %d, want 1", blocks)
	}
	if cmd != "print('hi')" {
		t.Errorf("command = %q", cmd)
	}
}

func TestExtractCommand_UnterminatedFenceCounts(t *testing.T) {
	_, blocks := extractCommand("```sh\necho hi\n")
	if blocks != 1 {
		t.Errorf("unterminated fence: blocks = %d, want 1", blocks)
	}
}
