package schema

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	assignmentPattern = regexp.MustCompile(`^\s*([A-Z0-9_]+)\s*=\s*(.*)\s*$`)
	requiredPattern   = regexp.MustCompile(`(?i)required`)
)

// flatState is the comment-association state of the flat parser.
type flatState int

const (
	// stateIdle has no pending description.
	stateIdle flatState = iota

	// stateAccumulating has collected one or more comment lines.
	stateAccumulating

	// stateEmitted has just consumed the pending description.
	stateEmitted
)

// flatParser turns .env.example text into entries. A comment block describes
// the assignment directly below it; a blank line or any unrecognized line
// between them discards the block.
type flatParser struct {
	state   flatState
	pending []string
	seen    map[string]bool
	entries []Entry
}

// ParseFlat extracts entries from flat KEY=value text.
//
// Keys in RequiredKeys, and keys whose description mentions "required", are
// marked required. A key assigned twice keeps its first occurrence; the
// comment block above the duplicate is discarded with it.
func ParseFlat(text string) []Entry {
	p := &flatParser{seen: make(map[string]bool)}
	for _, line := range strings.Split(text, "\n") {
		p.line(strings.TrimSuffix(line, "\r"))
	}
	return p.entries
}

func (p *flatParser) line(line string) {
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		p.reset()
	case strings.HasPrefix(trimmed, "#"):
		p.state = stateAccumulating
		p.pending = append(p.pending, commentText(trimmed))
	default:
		match := assignmentPattern.FindStringSubmatch(line)
		if match == nil {
			p.reset()
			return
		}
		p.assign(match[1], match[2])
	}
}

func (p *flatParser) assign(key, raw string) {
	if p.seen[key] {
		p.reset()
		return
	}

	description := ""
	if p.state == stateAccumulating {
		description = strings.TrimSpace(strings.Join(p.pending, " "))
	}

	p.entries = append(p.entries, Entry{
		Key:         key,
		Description: description,
		Default:     unquote(raw),
		Required:    RequiredKeys[key] || requiredPattern.MatchString(description),
	})
	p.seen[key] = true
	p.pending = p.pending[:0]
	p.state = stateEmitted
}

func (p *flatParser) reset() {
	p.pending = p.pending[:0]
	p.state = stateIdle
}

// commentText strips the leading '#' and at most one whitespace character.
func commentText(line string) string {
	text := strings.TrimPrefix(line, "#")
	if r, size := utf8.DecodeRuneInString(text); size > 0 && unicode.IsSpace(r) {
		text = text[size:]
	}
	return text
}

// unquote trims a raw value and strips one pair of matching single or double
// quotes. Escape sequences are left untouched.
func unquote(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}

	quote := value[0]
	if (quote == '"' || quote == '\'') && value[len(value)-1] == quote {
		if len(value) == 1 {
			return ""
		}
		return value[1 : len(value)-1]
	}
	return value
}
