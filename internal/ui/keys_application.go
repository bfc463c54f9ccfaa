package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"focusflow/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	Config    KeyWithTip
	ForceQuit KeyWithTip
	Help      KeyWithTip
	Quit      KeyWithTip
	Stats     KeyWithTip
}

// newApplicationKeys creates application key bindings
func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		Config:    buildBinding("config", defaults, customKeys),
		ForceQuit: buildBinding("force_quit", defaults, customKeys),
		Help:      buildBinding("help", defaults, customKeys),
		Quit:      buildBinding("quit", defaults, customKeys),
		Stats:     buildBinding("stats", defaults, customKeys),
	}
}

// buildBinding creates a KeyWithTip from the key definition, using
// custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}
	helpKeys := strings.Join(keys, "/")
	if helpKeys == " " {
		helpKeys = "space"
	}

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys, def.Help),
		),
	}

	if def.TipFormat != "" && len(keys) > 0 {
		tipKey := keys[0]
		if tipKey == " " {
			tipKey = "space"
		}
		result.Tip = newTip(def.TipFormat, tipKey)
	}

	return result
}
