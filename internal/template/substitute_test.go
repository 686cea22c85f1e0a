package template

import (
	"reflect"
	"testing"

	"github.com/magicvibe/vibehook/internal/event"
)

func taskCtx(t *testing.T) event.Context {
	t.Helper()
	ctx, err := event.Build(event.TaskStatusChange, "completed", event.Payload{
		Task: &event.TaskPayload{
			ID:    "42",
			Title: "Implement login",
			Path:  ".magic-vibe/ai/tasks/task42.md",
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return ctx
}

func TestSubstitute(t *testing.T) {
	ctx := taskCtx(t)

	tests := []struct {
		name    string
		command string
		want    string
	}{
		{
			name:    "single token",
			command: "echo done-{{task.id}}",
			want:    "echo done-42",
		},
		{
			name:    "multiple tokens",
			command: "git commit -m \"{{task.title}} ({{task.id}})\"",
			want:    "git commit -m \"Implement login (42)\"",
		},
		{
			name:    "repeated token",
			command: "{{task.id}} and {{task.id}}",
			want:    "42 and 42",
		},
		{
			name:    "inner whitespace",
			command: "echo {{ task.id }}",
			want:    "echo 42",
		},
		{
			name:    "no tokens",
			command: "echo hello",
			want:    "echo hello",
		},
		{
			name:    "single braces are not tokens",
			command: "echo {task.id}",
			want:    "echo {task.id}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Substitute(tt.command, ctx, false)
			if res.Command != tt.want {
				t.Errorf("Substitute(%q) = %q, want %q", tt.command, res.Command, tt.want)
			}
			if len(res.Unresolved) != 0 {
				t.Errorf("unexpected unresolved tokens: %v", res.Unresolved)
			}
		})
	}
}

func TestSubstitute_UnresolvedBecomesEmpty(t *testing.T) {
	ctx := taskCtx(t)

	res := Substitute("echo {{task.nonexistent}}", ctx, false)
	if res.Command != "echo " {
		t.Errorf("Command = %q, want %q", res.Command, "echo ")
	}
	if !reflect.DeepEqual(res.Unresolved, []string{"task.nonexistent"}) {
		t.Errorf("Unresolved = %v, want [task.nonexistent]", res.Unresolved)
	}
}

func TestSubstitute_ForeignNamespaceUnresolved(t *testing.T) {
	ctx := taskCtx(t)

	res := Substitute("push {{git.branch}} for {{task.id}}", ctx, false)
	if res.Command != "push  for 42" {
		t.Errorf("Command = %q", res.Command)
	}
	if !reflect.DeepEqual(res.Unresolved, []string{"git.branch"}) {
		t.Errorf("Unresolved = %v", res.Unresolved)
	}
}

func TestSubstitute_Quoted(t *testing.T) {
	ctx, err := event.Build(event.TaskCreation, "created", event.Payload{
		Task: &event.TaskPayload{Title: "it's a; rm -rf trap"},
	})
	if err != nil {
		t.Fatal(err)
	}

	res := Substitute("echo {{task.title}}", ctx, true)
	want := `echo 'it'\''s a; rm -rf trap'`
	if res.Command != want {
		t.Errorf("Command = %q, want %q", res.Command, want)
	}
}

func TestShellQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "'plain'"},
		{"with space", "'with space'"},
		{"it's", `'it'\''s'`},
		{"", "''"},
	}
	for _, tt := range tests {
		if got := ShellQuote(tt.in); got != tt.want {
			t.Errorf("ShellQuote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
