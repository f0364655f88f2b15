package cli

import (
	"strings"
)

const software = "keybot"

// LongDesc normalizes a command's long description: the indentation is
// removed and the text is trimmed.
func LongDesc(s string) string {
	return strings.TrimSpace(dedent(s))
}

// Examples normalizes a command's examples: each line is indented by two
// spaces and {{.Software}} is replaced by the name of the executable.
func Examples(s string) string {
	lines := strings.Split(strings.TrimSpace(dedent(s)), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "  " + line
		}
	}
	return strings.ReplaceAll(strings.Join(lines, "\n"), "{{.Software}}", software)
}

func dedent(s string) string {
	lines := strings.Split(s, "\n")

	indent := -1
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		if n := len(line) - len(trimmed); indent == -1 || n < indent {
			indent = n
		}
	}

	if indent <= 0 {
		return s
	}

	for i, line := range lines {
		if len(line) >= indent {
			lines[i] = line[indent:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.Join(lines, "\n")
}
