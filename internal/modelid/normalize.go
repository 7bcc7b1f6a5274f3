package modelid

import "strings"

// Normalize canonicalizes model profile names and grade aliases.
func Normalize(name string) string {
	normalized := strings.TrimSpace(strings.ToLower(name))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.Trim(normalized, "-")
	if normalized == "" {
		return ""
	}
	if canonical, ok := normalizeKnownAlias(normalized); ok {
		return canonical
	}
	return normalized
}

func normalizeKnownAlias(normalized string) (string, bool) {
	for _, candidate := range aliasCandidates(normalized) {
		if canonical, ok := canonicalProfileID(candidate); ok {
			return canonical, true
		}
	}
	return "", false
}

func aliasCandidates(normalized string) []string {
	candidate := strings.TrimPrefix(normalized, "two-wheel-bot-dqn-")
	if candidate == normalized {
		candidate = strings.TrimPrefix(candidate, "model-")
	}
	candidate = strings.Trim(candidate, "-")

	candidates := []string{normalized}
	if candidate != "" && candidate != normalized {
		candidates = append(candidates, candidate)
	}

	if grade, ok := gradePrefix(candidate); ok && grade != candidate {
		candidates = append(candidates, grade)
	}
	return candidates
}

// gradePrefix strips a trailing training timestamp from dump-file style
// names, e.g. "good-2025-08-17t19-28-58" resolves through "good".
func gradePrefix(value string) (string, bool) {
	for _, grade := range []string{"okayish", "good", "great"} {
		if value == grade || strings.HasPrefix(value, grade+"-") {
			return grade, true
		}
	}
	return "", false
}

func canonicalProfileID(candidate string) (string, bool) {
	switch candidate {
	case "okayish":
		return "two-wheel-bot-dqn-okayish", true
	case "good":
		return "two-wheel-bot-dqn-good", true
	case "great", "best", "default":
		return "two-wheel-bot-dqn-great", true
	default:
		return "", false
	}
}
