package helpers

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

func AppendSlashUrl(url string) string {
	if url == "" {
		return "/"
	}
	if len(url) > 0 && url[len(url)-1:] != "/" {
		return url + "/"
	}
	return url
}

func MakeUrlWithPort(url string, port string) string {
	return AppendSlashUrl(url + ":" + port)
}

// CollapseWhitespace trims the string and squeezes runs of whitespace
// into single spaces.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// FirstSentence returns everything up to and including the first
// sentence terminator, or the whole string if there is none.
func FirstSentence(s string) string {
	s = strings.TrimSpace(s)
	for i, r := range s {
		if r == '.' || r == '!' || r == '?' {
			return s[:i+1]
		}
	}
	return s
}
