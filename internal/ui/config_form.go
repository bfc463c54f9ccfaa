package ui

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"focusflow/internal/domain"
)

// ConfigFormResult contains the result of the timer configuration form
type ConfigFormResult struct {
	Cancelled bool
	Config    domain.TimerConfig
}

// ConfigForm is a Bubble Tea component for editing the timer durations.
// Changes made while a phase is running take effect at the next phase.
type ConfigForm struct {
	Completed  bool // Exported so Model can check completion
	focus      string
	form       *huh.Form
	longBreak  string
	result     ConfigFormResult
	sessions   string
	shortBreak string
}

// NewConfigForm creates a configuration form pre-filled from current
func NewConfigForm(current domain.TimerConfig) *ConfigForm {
	cf := &ConfigForm{
		focus:      minutesString(current.FocusDuration),
		longBreak:  minutesString(current.LongBreakDuration),
		sessions:   strconv.Itoa(current.SessionsBeforeLongBreak),
		shortBreak: minutesString(current.ShortBreakDuration),
	}

	positiveMinutes := func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return fmt.Errorf("must be a positive number of minutes")
		}
		return nil
	}

	cf.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Focus minutes").
			Value(&cf.focus).
			Validate(positiveMinutes),
		huh.NewInput().
			Title("Short break minutes").
			Value(&cf.shortBreak).
			Validate(positiveMinutes),
		huh.NewInput().
			Title("Long break minutes").
			Value(&cf.longBreak).
			Validate(positiveMinutes),
		huh.NewInput().
			Title("Sessions before long break").
			Description("A change while a phase runs applies when the next phase starts.").
			Value(&cf.sessions).
			Validate(func(s string) error {
				n, err := strconv.Atoi(s)
				if err != nil || n < 1 {
					return fmt.Errorf("must be at least 1")
				}
				return nil
			}),
	))

	return cf
}

func minutesString(d time.Duration) string {
	return strconv.Itoa(int(d / time.Minute))
}

func (cf *ConfigForm) Init() tea.Cmd {
	return cf.form.Init()
}

func (cf *ConfigForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			cf.Completed = true
			cf.result.Cancelled = true
			return cf, nil
		}
	}

	form, cmd := cf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cf.form = f
	}

	if cf.form.State == huh.StateCompleted {
		// All fields validated; Atoi cannot fail here
		focus, _ := strconv.Atoi(cf.focus)
		short, _ := strconv.Atoi(cf.shortBreak)
		long, _ := strconv.Atoi(cf.longBreak)
		sessions, _ := strconv.Atoi(cf.sessions)

		cf.result.Config = domain.TimerConfig{
			FocusDuration:           time.Duration(focus) * time.Minute,
			LongBreakDuration:       time.Duration(long) * time.Minute,
			SessionsBeforeLongBreak: sessions,
			ShortBreakDuration:      time.Duration(short) * time.Minute,
		}
		cf.Completed = true
	}

	return cf, cmd
}

func (cf *ConfigForm) View() string {
	if cf.form != nil {
		return cf.form.View()
	}
	return ""
}

// Result returns the form result
func (cf *ConfigForm) Result() ConfigFormResult {
	return cf.result
}
