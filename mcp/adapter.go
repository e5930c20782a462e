package mcp

import (
	"strconv"
	"strings"
	"sync"
)

// NameAdapter maps MCP tool names, which may contain dots, to names accepted
// by chat-completion tool definitions (^[a-zA-Z0-9_-]{1,64}$).
type NameAdapter struct {
	mu             sync.Mutex
	safeToOriginal map[string]string
	originalToSafe map[string]string
}

// NewNameAdapter creates a new name adapter.
func NewNameAdapter() *NameAdapter {
	return &NameAdapter{
		safeToOriginal: make(map[string]string),
		originalToSafe: make(map[string]string),
	}
}

const maxToolNameLen = 64

// ToSafeName replaces every character outside [a-zA-Z0-9_-] with an underscore
// and truncates the result to 64 characters.
// Example: "gmail.messages.list" -> "gmail_messages_list"
func ToSafeName(original string) string {
	return truncate(strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, original), maxToolNameLen)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// ToOriginalName converts a safe name back to the original MCP tool name.
func (a *NameAdapter) ToOriginalName(safe string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	original, ok := a.safeToOriginal[safe]
	return original, ok
}

// GetSafeName returns the safe name for an original name, creating the
// mapping if needed. Collisions get a numeric suffix.
func (a *NameAdapter) GetSafeName(original string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if safe, ok := a.originalToSafe[original]; ok {
		return safe
	}
	safe := ToSafeName(original)
	for i := 2; ; i++ {
		if _, taken := a.safeToOriginal[safe]; !taken {
			break
		}
		suffix := "_" + strconv.Itoa(i)
		safe = truncate(ToSafeName(original), maxToolNameLen-len(suffix)) + suffix
	}
	a.originalToSafe[original] = safe
	a.safeToOriginal[safe] = original
	return safe
}
