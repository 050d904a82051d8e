package formatter

import (
	"regexp"
	"strconv"
	"strings"
)

// FormatNumber converts an integer to a string with commas as thousands separators.
// Example: 1234567 -> "1,234,567"
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		s = s[1:]
	}

	le := len(s)
	if le <= 3 {
		if n < 0 {
			return "-" + s
		}
		return s
	}

	sepCount := (le - 1) / 3

	res := make([]byte, le+sepCount)

	j := len(res) - 1
	for i := le - 1; i >= 0; i-- {
		res[j] = s[i]
		j--
		if (le-i)%3 == 0 && i > 0 {
			res[j] = ','
			j--
		}
	}

	if n < 0 {
		return "-" + string(res)
	}
	return string(res)
}

// EscapeMarkdownV2 escapes special characters in Markdown V2 format
func EscapeMarkdownV2(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			sb.WriteRune('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

var hashtagPattern = regexp.MustCompile(`#[\p{L}\p{N}_]+`)

// ExtractHashtags returns the caption's hashtags lowercased, deduplicated and
// joined with commas in order of first appearance, or nil when there are none.
func ExtractHashtags(caption string) *string {
	matches := hashtagPattern.FindAllString(caption, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tag := strings.ToLower(strings.TrimPrefix(m, "#"))
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	joined := strings.Join(tags, ",")
	return &joined
}
