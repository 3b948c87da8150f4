package dispute

import (
	"strconv"
	"strings"
)

// NormalizeOrderNumber trims the raw value and strips leading zeros when it is
// an integer. Non-numeric identifiers pass through unchanged; this never fails.
func NormalizeOrderNumber(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return ""
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return cleaned
	}
	return strconv.FormatInt(n, 10)
}

// NormalizeRestaurantName maps known spelling/branch variants onto the one
// canonical display name. Unknown names pass through trimmed; empty input
// yields the configured fallback ("Desconhecido").
func (m *Mappings) NormalizeRestaurantName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return m.fallbackName
	}
	if canonical, ok := m.byVariant[foldName(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// IdentityKey derives the stable composite identity of one order:
// normalized order number + "|" + folded canonical restaurant name.
// The same order at two branches yields two distinct keys.
func (m *Mappings) IdentityKey(orderNumber, restaurantName string) string {
	return NormalizeOrderNumber(orderNumber) + "|" + foldName(m.NormalizeRestaurantName(restaurantName))
}
