package frontmatter

import "strings"

const delimiter = "---"

// Parse splits asset documentation into front matter metadata and the markdown body.
// The header block is delimited by "---" lines and holds "key: value" pairs with
// optional surrounding quotes. A block without a closing delimiter is not treated
// as metadata: the full content is returned as the body.
func Parse(content string) (map[string]string, string) {
	trimmed := strings.TrimSpace(content)

	lines := strings.Split(trimmed, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != delimiter {
		return map[string]string{}, content
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			closing = i
			break
		}
	}
	if closing == -1 {
		return map[string]string{}, content
	}

	meta := make(map[string]string)
	for _, line := range lines[1:closing] {
		idx := strings.Index(line, ":")
		if idx <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		meta[key] = stripQuotes(value)
	}

	body := strings.TrimSpace(strings.Join(lines[closing+1:], "\n"))
	return meta, body
}

// stripQuotes removes one matching pair of surrounding single or double quotes.
func stripQuotes(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
