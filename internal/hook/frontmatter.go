package hook

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/magicvibe/vibehook/internal/event"
)

// frontMatter is the YAML header of a hook file.
type frontMatter struct {
	Type     string `yaml:"type"`
	Trigger  string `yaml:"trigger"`
	Priority *int   `yaml:"priority"`
	Enabled  *bool  `yaml:"enabled"`
}

const frontMatterDelim = "---"

// Parse decodes a single hook file. It never returns an error for malformed
// content: problems are recorded on the returned Definition so the load can
// continue and the hook stays inspectable.
func Parse(fileName, path string, tier Tier, data []byte) Definition {
	def := Definition{
		ID:       idFromFileName(fileName),
		File:     path,
		FileName: fileName,
		Tier:     tier,
		Priority: DefaultPriority,
		Enabled:  true,
	}

	header, body, err := splitFrontMatter(string(data))
	if err != nil {
		def.Problem = err.Error()
		return def
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		def.Problem = fmt.Sprintf("invalid front matter: %v", err)
		return def
	}

	def.Type = event.Type(fm.Type)
	def.Trigger = fm.Trigger
	if fm.Priority != nil {
		def.Priority = *fm.Priority
	}
	if fm.Enabled != nil {
		def.Enabled = *fm.Enabled
	}

	def.Title = firstHeading(body)

	command, blocks := extractCommand(body)
	def.Command = command

	// Required-field and shape checks, most specific problem wins.
	switch {
	case fm.Type == "":
		def.Problem = "missing required front matter field: type"
	case !def.Type.Known():
		def.Problem = fmt.Sprintf("unknown event type %q", fm.Type)
	case fm.Trigger == "":
		def.Problem = "missing required front matter field: trigger"
	case !event.ValidTrigger(def.Type, fm.Trigger):
		def.Problem = fmt.Sprintf("invalid trigger %q for event type %q", fm.Trigger, fm.Type)
	case blocks == 0:
		def.Problem = "no fenced command block"
	case blocks > 1:
		def.Problem = fmt.Sprintf("expected exactly one fenced command block, found %d", blocks)
	}

	return def
}

// splitFrontMatter separates the YAML header from the Markdown body.
// The file must open with a "---" line and contain a closing "---" line.
func splitFrontMatter(content string) (header, body string, err error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t\r") != frontMatterDelim {
		return "", "", fmt.Errorf("missing front matter: file must start with %q", frontMatterDelim)
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t\r") == frontMatterDelim {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n"), nil
		}
	}
	return "", "", fmt.Errorf("unterminated front matter: no closing %q", frontMatterDelim)
}

// extractCommand returns the text of the single fenced code block in body
// and the number of fenced blocks found. The info string (language tag) is
// ignored.
func extractCommand(body string) (command string, blocks int) {
	lines := strings.Split(body, "\n")
	var current []string
	inBlock := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if inBlock {
				blocks++
				if blocks == 1 {
					command = strings.TrimSpace(strings.Join(current, "\n"))
				}
				current = nil
				inBlock = false
			} else {
				inBlock = true
			}
			continue
		}
		if inBlock {
			current = append(current, line)
		}
	}
	if inBlock {
		// Unterminated fence counts as a block so the hook is flagged
		// rather than silently losing its command.
		blocks++
		if blocks == 1 {
			command = strings.TrimSpace(strings.Join(current, "\n"))
		}
	}
	return command, blocks
}

// firstHeading returns the text of the first "# " heading in body.
func firstHeading(body string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}
	return ""
}
