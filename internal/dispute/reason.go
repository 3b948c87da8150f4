package dispute

import "strings"

// MapReason classifies a free-text cancellation reason and its origin into the
// normalized (responsible party, specific reason) pair. First matching rule
// wins; unmatched input degrades to the configured fallback bucket.
func (m *Mappings) MapReason(cancellationReason, cancellationOrigin string) Classification {
	reason := strings.ToLower(strings.TrimSpace(cancellationReason))
	origin := strings.ToLower(strings.TrimSpace(cancellationOrigin))

	for _, rule := range m.reasonRules {
		if !containsAny(reason, rule.ReasonContains) {
			continue
		}
		if !containsAny(origin, rule.OriginContains) {
			continue
		}
		return Classification{
			ResponsibleParty: rule.Responsible,
			SpecificReason:   rule.Specific,
		}
	}
	return m.fallbackReason
}

// containsAny is vacuously true for an empty needle list so rules can match
// on reason only, origin only, or both.
func containsAny(haystack string, needles []string) bool {
	if len(needles) == 0 {
		return true
	}
	if haystack == "" {
		return false
	}
	for _, n := range needles {
		if strings.Contains(haystack, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
