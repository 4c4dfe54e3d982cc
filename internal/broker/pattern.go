package broker

import "strings"

// MatchesPattern applies topic exchange binding semantics to a routing key.
// Words are separated by ".", "*" matches exactly one word and "#" matches zero or more.
func MatchesPattern(pattern, routingKey string) bool {
	return matchWords(strings.Split(pattern, "."), strings.Split(routingKey, "."))
}

// MatchesAny reports whether any of the binding patterns accepts routingKey.
func MatchesAny(patterns []string, routingKey string) bool {
	for _, p := range patterns {
		if MatchesPattern(p, routingKey) {
			return true
		}
	}
	return false
}

func matchWords(pattern, key []string) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case "#":
			if len(pattern) == 1 {
				return true
			}
			for i := 0; i <= len(key); i++ {
				if matchWords(pattern[1:], key[i:]) {
					return true
				}
			}
			return false
		case "*":
			if len(key) == 0 {
				return false
			}
		default:
			if len(key) == 0 || pattern[0] != key[0] {
				return false
			}
		}
		pattern = pattern[1:]
		key = key[1:]
	}
	return len(key) == 0
}
