package shape

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
)

// Stringify renders val as a compact single-line string for messages and
// reference substitution. The output is JSON-shaped but without double
// quotes, and empty for unserializable values. A positive maxlen truncates
// the result, ellipsized when it fits.
func Stringify(val any, maxlen ...int) string {
	if val == nil {
		return ""
	}

	b, err := json.Marshal(val)
	if err != nil {
		return ""
	}
	s := strings.ReplaceAll(string(b), `"`, "")

	if len(maxlen) > 0 && maxlen[0] > 0 && len(s) > maxlen[0] {
		ml := maxlen[0]
		if ml >= 3 {
			return s[:ml-3] + "..."
		}
		return s[:ml]
	}
	return s
}

var escapeRegexpRe = regexp.MustCompile(`[.*+?^${}()|\[\]\\]`)

// EscapeRegexp escapes regular expression metacharacters in s.
func EscapeRegexp(s string) string {
	return escapeRegexpRe.ReplaceAllString(s, `\$0`)
}

// EscapeURL escapes s for safe inclusion in a URL query.
func EscapeURL(s string) string {
	return url.QueryEscape(s)
}

var (
	innerSlashesRe = regexp.MustCompile(`([^/])/+`)
	trailSlashesRe = regexp.MustCompile(`/+$`)
	leadSlashesRe  = regexp.MustCompile(`^/+`)
)

// JoinURL joins URL fragments with single forward slashes, folding duplicate
// slashes and dropping undefined and empty parts. Non-string parts are
// stringified first.
func JoinURL(parts []any) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == nil || p == "" {
			continue
		}
		s, ok := p.(string)
		if !ok {
			s = Stringify(p)
		}
		kept = append(kept, s)
	}

	for i, s := range kept {
		s = innerSlashesRe.ReplaceAllString(s, "$1/")
		if i == 0 {
			s = trailSlashesRe.ReplaceAllString(s, "")
		} else {
			s = leadSlashesRe.ReplaceAllString(s, "")
			s = trailSlashesRe.ReplaceAllString(s, "")
		}
		kept[i] = s
	}

	out := kept[:0]
	for _, s := range kept {
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "/")
}
