package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"

	"focusflow/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// tips is the private collection of all tips, populated by newTip().
// Key maps are built per session, so registration dedupes by format
// under a lock to keep the list stable and race-free.
var (
	tips   []Tip
	tipsMu sync.Mutex
)

// newTip registers a tip with a format string and keys to highlight.
// Format uses %s placeholders for keys, e.g. newTip("press %s to undo", "u").
// A format registered before keeps its original keys.
func newTip(format string, keys ...string) string {
	tipsMu.Lock()
	registered := false
	for _, tip := range tips {
		if tip.Format == format {
			registered = true
			break
		}
	}
	if !registered {
		tips = append(tips, Tip{Format: format, Keys: keys})
	}
	tipsMu.Unlock()

	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	return fmt.Sprintf(format, args...)
}

// GetTips returns all registered tips
func GetTips() []Tip {
	tipsMu.Lock()
	defer tipsMu.Unlock()
	return append([]Tip(nil), tips...)
}

// RenderTip formats a tip with highlighted keys and gray text
func RenderTip(tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	var result string
	result += theme.TipTextStyle.Render("ℹ  tip: ")
	for i, part := range parts {
		result += theme.TipTextStyle.Render(part)
		if i < len(tip.Keys) {
			result += theme.TipKeyStyle.Render(tip.Keys[i])
		}
	}
	return result
}

// KeyWithTip wraps a key.Binding with an optional tip for the rotating
// tips display.
type KeyWithTip struct {
	Binding key.Binding
	Tip     string
}
