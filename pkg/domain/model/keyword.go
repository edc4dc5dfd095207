package model

import "strings"

// MatchKeywords returns the subset of keywords whose lowercase form occurs as
// a substring of the lowercased text. Duplicated keywords collapse to a single
// entry and the configured order is preserved. Empty text or an empty keyword
// set yields an empty result.
func MatchKeywords(text string, keywords []string) []string {
	if text == "" || len(keywords) == 0 {
		return nil
	}

	lowered := strings.ToLower(text)
	seen := map[string]struct{}{}

	var matched []string
	for _, kw := range keywords {
		needle := strings.ToLower(kw)
		if needle == "" {
			continue
		}
		if _, ok := seen[needle]; ok {
			continue
		}
		if strings.Contains(lowered, needle) {
			matched = append(matched, kw)
			seen[needle] = struct{}{}
		}
	}

	return matched
}
