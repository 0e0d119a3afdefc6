package keyword

import "slices"

// Helper to check a single token against a list of tokens
func TokenInSet(tok string, set []string) bool {
	return slices.Contains(set, tok)
}

// Checks whether any token from the text appears in the given set
func AnyTokenInSet(toks []string, set []string) bool {
	for _, tok := range toks {
		if TokenInSet(tok, set) {
			return true
		}
	}
	return false
}

// Returns the distinct tokens from the text which appear in the given set, preserving first-seen order
func MatchTokensInSet(toks []string, set []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, tok := range toks {
		if TokenInSet(tok, set) && !seen[tok] {
			out = append(out, tok)
			seen[tok] = true
		}
	}
	return out
}
