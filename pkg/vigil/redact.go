package vigil

import "strings"

// redactMaxDepth bounds the recursive traversal so that arbitrarily deep
// or self-referential structures cannot hang the redactor. Subtrees below
// the bound are returned unmodified.
const redactMaxDepth = 10

// minMaskedLength is the shortest secret that keeps its first and last
// four characters visible in the mask.
const minMaskedLength = 9

// Redact returns a structurally identical copy of value with every exact
// occurrence of secret inside string fields replaced by a masked form.
// It is intended only for values destined for logs; data returned to
// callers is never redacted.
func Redact(value any, secret string) any {
	if secret == "" {
		return value
	}

	return redactValue(value, secret, 0)
}

// MaskSecret masks a secret for display: the first and last four
// characters remain visible for secrets longer than eight characters,
// shorter secrets are masked entirely.
func MaskSecret(secret string) string {
	if len(secret) < minMaskedLength {
		return "****"
	}

	return secret[:4] + strings.Repeat("*", len(secret)-8) + secret[len(secret)-4:]
}

func redactValue(value any, secret string, depth int) any {
	if depth >= redactMaxDepth {
		return value
	}

	switch typed := value.(type) {
	case string:
		return strings.ReplaceAll(typed, secret, MaskSecret(secret))
	case map[string]any:
		redacted := make(map[string]any, len(typed))
		for key, item := range typed {
			redacted[key] = redactValue(item, secret, depth+1)
		}

		return redacted
	case map[string]string:
		redacted := make(map[string]string, len(typed))
		for key, item := range typed {
			redacted[key] = strings.ReplaceAll(item, secret, MaskSecret(secret))
		}

		return redacted
	case []any:
		redacted := make([]any, len(typed))
		for i, item := range typed {
			redacted[i] = redactValue(item, secret, depth+1)
		}

		return redacted
	case []string:
		redacted := make([]string, len(typed))
		for i, item := range typed {
			redacted[i] = strings.ReplaceAll(item, secret, MaskSecret(secret))
		}

		return redacted
	default:
		return value
	}
}
