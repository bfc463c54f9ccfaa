package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"focusflow/internal/config"
	"focusflow/internal/domain"
	"focusflow/internal/logging"
	"focusflow/internal/services"
	"focusflow/internal/theme"
)

type uiState int

const (
	stateMain uiState = iota
	stateConfigForm
	stateHelp
	stateStats
	stateTaskForm
)

// tickMsg drives the one-second timer loop
type tickMsg time.Time

// checkpointDoneMsg reports the outcome of an async stats checkpoint
type checkpointDoneMsg struct {
	err error
}

// tipRotateSeconds is how often the bottom tip line rotates
const tipRotateSeconds = 30

type Model struct {
	configForm   *Dialog                // Timer configuration dialog
	devMode      bool                   // Development mode (shows version info in dialogs)
	errorManager *ErrorManager          // Error display and auto-clearing
	height       int
	helpScreen   *Dialog                // Help screen dialog
	keys         KeyMap                 // Keyboard shortcuts
	state        uiState
	stats        *services.StatsService // Stats aggregation service
	statsScreen  *Dialog                // Statistics dialog
	taskForm     *Dialog                // Task add/edit dialog
	taskPane     *TaskPane              // Task list component
	tasks        *services.TaskService  // Task list service
	tickCount    int                    // Seconds since start, drives tip rotation
	timer        *services.TimerService // Session timer service
	timerPanel   *TimerPanel            // Timer display component
	width        int
}

func NewModel(
	errorClearDelay time.Duration,
	devMode bool,
	keysConfig config.KeyBindingsConfig,
	timer *services.TimerService,
	tasks *services.TaskService,
	stats *services.StatsService,
) *Model {
	keys := NewKeyMap(keysConfig)

	m := &Model{
		devMode:      devMode,
		errorManager: NewErrorManager(errorClearDelay),
		keys:         keys,
		state:        stateMain,
		stats:        stats,
		taskPane:     NewTaskPane(keys),
		tasks:        tasks,
		timer:        timer,
		timerPanel:   NewTimerPanel(timer, stats),
	}
	m.refreshTasks()
	return m
}

// refreshTasks reloads the pane from the task service
func (m *Model) refreshTasks() {
	m.taskPane.SetTasks(m.tasks.List(), m.tasks.CanUndo())
}

// tick schedules the next one-second tick
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// checkpointCmd persists accumulated stats off the update loop
func (m *Model) checkpointCmd() tea.Cmd {
	return func() tea.Msg {
		return checkpointDoneMsg{err: m.timer.Checkpoint(context.Background())}
	}
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The timer keeps running whatever screen is on top
	if t, ok := msg.(tickMsg); ok {
		return m.handleTick(t)
	}

	switch m.state {
	case stateMain:
		return m.updateMain(msg)
	case stateConfigForm:
		return m.updateConfigForm(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateStats:
		return m.updateStats(msg)
	case stateTaskForm:
		return m.updateTaskForm(msg)
	}
	return m, nil
}

// handleTick advances the timer by one second and reschedules
func (m *Model) handleTick(tickMsg) (tea.Model, tea.Cmd) {
	m.tickCount++

	_, done := m.timer.Tick(time.Second)
	if done {
		// Phase completed; persist what the aggregator accumulated
		return m, tea.Batch(tick(), m.checkpointCmd())
	}
	return m, tick()
}

func (m *Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		return m.handleQuit()

	case ShowHelpMsg:
		contentForm := NewHelpScreen(&m.keys)
		m.helpScreen = NewDialog("Help", contentForm, m.devMode)
		m.state = stateHelp
		// Send initial WindowSizeMsg so the viewport can initialize
		initCmd := m.helpScreen.Init()
		updatedDialog, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.helpScreen = updatedDialog.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd)

	case ShowStatsMsg:
		contentForm := NewStatsScreen(&m.keys, m.stats.Snapshot(), m.stats.Today())
		m.statsScreen = NewDialog("Statistics", contentForm, m.devMode)
		m.state = stateStats
		initCmd := m.statsScreen.Init()
		updatedDialog, sizeCmd := m.statsScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.statsScreen = updatedDialog.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd)

	case ShowConfigMsg:
		contentForm := NewConfigForm(m.timer.Config())
		m.configForm = NewDialog("Timer Configuration", contentForm, m.devMode)
		m.state = stateConfigForm
		return m, m.configForm.Init()

	case NewTaskMsg:
		contentForm := NewTaskForm(0, "", 0)
		m.taskForm = NewDialog("Add Task", contentForm, m.devMode)
		m.state = stateTaskForm
		return m, m.taskForm.Init()

	case EditTaskMsg:
		task, err := m.tasks.Get(msg.TaskID)
		if err != nil {
			return m.reportError(fmt.Errorf("failed to edit task: %w", err))
		}
		contentForm := NewTaskForm(task.ID, task.Text, task.Points)
		m.taskForm = NewDialog("Edit Task", contentForm, m.devMode)
		m.state = stateTaskForm
		return m, m.taskForm.Init()

	case ToggleTaskMsg:
		if _, err := m.tasks.Toggle(context.Background(), msg.TaskID); err != nil {
			m.refreshTasks()
			return m.reportError(fmt.Errorf("failed to toggle task: %w", err))
		}
		m.refreshTasks()
		return m, nil

	case DeleteTaskMsg:
		if _, err := m.tasks.Delete(context.Background(), msg.TaskID); err != nil {
			m.refreshTasks()
			return m.reportError(fmt.Errorf("failed to delete task: %w", err))
		}
		m.refreshTasks()
		return m, nil

	case UndoDeleteMsg:
		restored, err := m.tasks.UndoDelete(context.Background())
		if err != nil {
			m.refreshTasks()
			return m.reportError(fmt.Errorf("failed to undo delete: %w", err))
		}
		m.refreshTasks()
		m.selectTask(restored.ID)
		return m, nil

	case MoveTaskMsg:
		if err := m.tasks.Reorder(context.Background(), msg.TaskID, msg.NewIndex); err != nil {
			m.refreshTasks()
			return m.reportError(fmt.Errorf("failed to move task: %w", err))
		}
		m.refreshTasks()
		m.taskPane.Select(msg.NewIndex)
		return m, nil

	case ToggleTimerMsg:
		m.toggleTimer()
		return m, nil

	case StopTimerMsg:
		m.timer.Stop()
		return m, nil

	case checkpointDoneMsg:
		if msg.err != nil {
			return m.reportError(fmt.Errorf("failed to save progress: %w", msg.err))
		}
		return m, nil

	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalculateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleMainKey(msg)
	}

	return m, nil
}

// handleMainKey routes main-screen key presses
func (m *Model) handleMainKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit.Binding),
		key.Matches(keyMsg, m.keys.Application.Quit.Binding):
		return m.handleQuit()
	case key.Matches(keyMsg, m.keys.Application.Help.Binding):
		return m.updateMain(ShowHelpMsg{})
	case key.Matches(keyMsg, m.keys.Application.Stats.Binding):
		return m.updateMain(ShowStatsMsg{})
	case key.Matches(keyMsg, m.keys.Application.Config.Binding):
		return m.updateMain(ShowConfigMsg{})
	case key.Matches(keyMsg, m.keys.Timer.StartPause.Binding):
		m.toggleTimer()
		return m, nil
	case key.Matches(keyMsg, m.keys.Timer.Stop.Binding):
		m.timer.Stop()
		return m, nil
	}

	// Navigation and task keys belong to the pane
	return m, m.taskPane.Update(keyMsg)
}

// toggleTimer starts, pauses, or resumes depending on the current phase
func (m *Model) toggleTimer() {
	switch {
	case m.timer.Phase() == domain.PhasePaused:
		m.timer.Resume()
	case m.timer.Start():
		// Started from idle
	default:
		m.timer.Pause()
	}
}

// handleQuit persists outstanding stats and exits
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	if err := m.timer.Checkpoint(context.Background()); err != nil {
		logging.Logger.Warn("Failed to checkpoint stats on quit", "error", err)
	}
	return m, tea.Quit
}

// reportError displays an error and schedules its clearing
func (m *Model) reportError(err error) (tea.Model, tea.Cmd) {
	logging.Logger.Warn("UI error", "error", err)
	m.errorManager.SetError(err)
	return m, m.errorManager.ClearAfterDelay()
}

// selectTask moves the cursor to the task with the given ID
func (m *Model) selectTask(id int) {
	for i, task := range m.tasks.List() {
		if task.ID == id {
			m.taskPane.Select(i)
			return
		}
	}
}

func (m *Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.taskForm.Update(msg)
	m.taskForm = updated.(*Dialog)

	if content, ok := m.taskForm.Content().(*TaskForm); ok && content.Completed {
		result := content.Result()
		m.state = stateMain
		m.taskForm = nil

		if result.Cancelled {
			return m, nil
		}

		ctx := context.Background()
		if result.TaskID == 0 {
			task, err := m.tasks.Add(ctx, result.Text, result.Points)
			m.refreshTasks()
			if err != nil {
				return m.reportError(fmt.Errorf("failed to add task: %w", err))
			}
			m.selectTask(task.ID)
			return m, nil
		}

		_, err := m.tasks.Edit(ctx, result.TaskID, &result.Text, &result.Points)
		m.refreshTasks()
		if err != nil {
			return m.reportError(fmt.Errorf("failed to save task: %w", err))
		}
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateConfigForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.configForm.Update(msg)
	m.configForm = updated.(*Dialog)

	if content, ok := m.configForm.Content().(*ConfigForm); ok && content.Completed {
		result := content.Result()
		m.state = stateMain
		m.configForm = nil

		if result.Cancelled {
			return m, nil
		}

		if err := m.timer.SetConfig(context.Background(), result.Config); err != nil {
			return m.reportError(fmt.Errorf("failed to update timer config: %w", err))
		}
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateMain
		m.helpScreen = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.statsScreen.Update(msg)
	m.statsScreen = updated.(*Dialog)

	if content, ok := m.statsScreen.Content().(*StatsScreen); ok && content.Completed {
		m.state = stateMain
		m.statsScreen = nil
		return m, nil
	}

	return m, cmd
}

// recalculateLayout distributes the terminal height between components
func (m *Model) recalculateLayout() {
	m.timerPanel.SetWidth(m.width)

	// Header (3) + timer panel (3) + spacing (3) + short help (1) +
	// bottom error/tip section (2)
	overhead := 12
	listHeight := m.height - overhead
	if listHeight < 1 {
		listHeight = 1
	}
	m.taskPane.SetSize(m.width, listHeight)
}

// renderShortHelp renders the bottom key binding bar
func renderShortHelp(keys KeyMap) string {
	var line string
	for i, binding := range keys.ShortHelp() {
		help := binding.Help()
		if i > 0 {
			line += theme.HelpLabelStyle.Render(" • ")
		}
		line += theme.HelpShortcutStyle.Render(help.Key) + theme.HelpLabelStyle.Render(" "+help.Desc)
	}
	return line
}

func (m *Model) View() string {
	switch m.state {
	case stateMain:
		view := renderHeader(m.devMode, "")
		view += "\n" + m.timerPanel.View() + "\n\n"
		view += m.taskPane.View() + "\n\n"
		view += renderShortHelp(m.keys)

		// Bottom section - error or rotating tip
		view += "\n"
		if m.errorManager.HasError() {
			errorText := formatErrorForDisplay(m.errorManager.GetError(), m.width)
			view += theme.ErrorStyle.Render(errorText)
		} else if allTips := GetTips(); len(allTips) > 0 {
			tip := allTips[(m.tickCount/tipRotateSeconds)%len(allTips)]
			view += RenderTip(tip) + "\n "
		} else {
			view += " \n "
		}
		return view

	case stateConfigForm:
		if m.configForm != nil {
			return m.configForm.View()
		}
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	case stateStats:
		if m.statsScreen != nil {
			return m.statsScreen.View()
		}
	case stateTaskForm:
		if m.taskForm != nil {
			return m.taskForm.View()
		}
	}
	return ""
}
