package agent

import (
	"strings"
)

// IsTopicRelated reports whether message mentions any of the default CTBTO keywords.
// Matching is a case-insensitive substring search, so short acronyms like "ims"
// also match inside longer words.
func IsTopicRelated(message string) bool {
	return containsAny(message, defaultKeywords)
}

// IsTopicRelated reports whether message mentions any of the profile keywords.
func (p Profile) IsTopicRelated(message string) bool {
	return containsAny(message, p.Keywords)
}

func containsAny(message string, keywords []string) bool {
	if message == "" {
		return false
	}

	lower := strings.ToLower(message)
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
