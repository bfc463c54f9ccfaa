package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults  []string
	Help      string
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all configurable key bindings.
// This is the single source of truth for key names, defaults, help text,
// and tips. Names are what settings.json "keys" entries refer to.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "config", Defaults: []string{"c"}, Help: "configure timer durations", TipFormat: "press %s to change focus and break durations"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"h", "?"}, Help: "show keyboard shortcuts", TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},
	{Name: "stats", Defaults: []string{"s"}, Help: "show statistics", TipFormat: "press %s to review your streak and daily totals"},

	// Navigation keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next task"},
	{Name: "move_down", Defaults: []string{"J", "shift+down"}, Help: "move task down"},
	{Name: "move_up", Defaults: []string{"K", "shift+up"}, Help: "move task up", TipFormat: "press %s to reorder tasks in the list"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous task"},

	// Task keys
	{Name: "delete_task", Defaults: []string{"d"}, Help: "delete task", TipFormat: "press %s to delete a task (u restores it)"},
	{Name: "edit_task", Defaults: []string{"e"}, Help: "edit task text and points"},
	{Name: "new_task", Defaults: []string{"n"}, Help: "add new task", TipFormat: "press %s to add a task with a point value"},
	{Name: "toggle_done", Defaults: []string{"enter"}, Help: "toggle task done", TipFormat: "press %s to complete a task and score its points"},
	{Name: "undo_delete", Defaults: []string{"u"}, Help: "undo last delete"},

	// Timer keys
	{Name: "start_pause", Defaults: []string{" "}, Help: "start/pause timer", TipFormat: "press %s to start a focus session"},
	{Name: "stop_timer", Defaults: []string{"x"}, Help: "stop timer (back to idle)"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
