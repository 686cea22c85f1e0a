// Package template resolves {{namespace.field}} placeholders in hook command
// templates.
//
// Substitution is purely textual: the template is never evaluated, and the
// context values are inserted as-is by default. Inserted values are NOT
// shell-escaped in that default mode — a task title containing shell
// metacharacters can alter the executed command. Callers that want the safe
// behavior pass quote=true, which single-quote-escapes every inserted value.
package template

import (
	"regexp"
	"strings"

	"github.com/magicvibe/vibehook/internal/event"
)

// tokenRegex matches {{namespace.field}} placeholders, with optional inner
// whitespace: {{task.id}}, {{ git.branch }}.
var tokenRegex = regexp.MustCompile(`\{\{\s*([a-zA-Z][a-zA-Z0-9_]*\.[a-zA-Z][a-zA-Z0-9_]*)\s*\}\}`)

// Result is a resolved command plus the tokens that had no context value.
// Unresolved tokens substitute to the empty string; callers log one warning
// per entry for observability.
type Result struct {
	Command    string
	Unresolved []string
}

// Substitute replaces every {{namespace.field}} token in command with the
// matching context value. Tokens with no value become empty strings and are
// reported in Result.Unresolved; substitution itself never fails.
func Substitute(command string, ctx event.Context, quote bool) Result {
	var unresolved []string
	resolved := tokenRegex.ReplaceAllStringFunc(command, func(match string) string {
		sub := tokenRegex.FindStringSubmatch(match)
		if sub == nil {
			return match
		}
		name := sub[1]
		value, ok := ctx.Lookup(name)
		if !ok {
			unresolved = append(unresolved, name)
			value = ""
		}
		if quote {
			return ShellQuote(value)
		}
		return value
	})
	return Result{Command: resolved, Unresolved: unresolved}
}

// ShellQuote escapes a string for safe use in shell commands.
// It wraps the value in single quotes and escapes any embedded single
// quotes, so "it's" becomes 'it'\''s'.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
