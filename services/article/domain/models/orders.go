package models

// MergeOrders returns existing with code appended when it is not already present.
// A blank code returns existing unchanged. Prior entries keep their relative order;
// the returned slice never aliases existing when something is appended.
func MergeOrders(existing []string, code string) []string {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return existing
	}
	for _, o := range existing {
		if NormalizeCode(o) == normalized {
			return existing
		}
	}
	merged := make([]string, 0, len(existing)+1)
	merged = append(merged, existing...)
	return append(merged, normalized)
}

// NormalizeOrders normalizes every code in orders, dropping blanks and duplicates
// while keeping first-occurrence order.
func NormalizeOrders(orders []string) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = MergeOrders(out, o)
	}
	return out
}
