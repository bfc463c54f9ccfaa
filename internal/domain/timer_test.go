package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() TimerConfig {
	return TimerConfig{
		FocusDuration:           25 * time.Minute,
		LongBreakDuration:       30 * time.Minute,
		SessionsBeforeLongBreak: 4,
		ShortBreakDuration:      5 * time.Minute,
	}
}

func TestTimerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TimerConfig)
		wantErr bool
	}{
		{"defaults are valid", func(c *TimerConfig) {}, false},
		{"zero focus", func(c *TimerConfig) { c.FocusDuration = 0 }, true},
		{"negative short break", func(c *TimerConfig) { c.ShortBreakDuration = -time.Minute }, true},
		{"zero long break", func(c *TimerConfig) { c.LongBreakDuration = 0 }, true},
		{"zero cadence", func(c *TimerConfig) { c.SessionsBeforeLongBreak = 0 }, true},
		{"one-minute phases", func(c *TimerConfig) {
			c.FocusDuration = time.Minute
			c.ShortBreakDuration = time.Minute
			c.LongBreakDuration = time.Minute
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultTimerConfig()
			tt.mutate(&config)
			err := config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEngine_StartFromIdle(t *testing.T) {
	engine := NewEngine(testConfig())

	assert.Equal(t, PhaseIdle, engine.Phase())
	assert.True(t, engine.Start())
	assert.Equal(t, PhaseFocus, engine.Phase())
	assert.Equal(t, time.Duration(0), engine.Elapsed())
}

func TestEngine_StartWhileRunningIsNoOp(t *testing.T) {
	engine := NewEngine(testConfig())
	require.True(t, engine.Start())
	engine.Tick(10 * time.Minute)

	assert.False(t, engine.Start())
	assert.Equal(t, PhaseFocus, engine.Phase())
	assert.Equal(t, 10*time.Minute, engine.Elapsed())
}

func TestEngine_TickCompletesFocusIntoShortBreak(t *testing.T) {
	engine := NewEngine(testConfig())
	require.True(t, engine.Start())

	// Sum of ticks equal to exactly the focus duration
	for i := 0; i < 24; i++ {
		_, done := engine.Tick(time.Minute)
		assert.False(t, done)
	}
	completion, done := engine.Tick(time.Minute)

	require.True(t, done)
	assert.Equal(t, PhaseFocus, completion.Completed)
	assert.Equal(t, PhaseShortBreak, completion.Next)
	assert.Equal(t, 25*time.Minute, completion.Duration)
	assert.Equal(t, 1, completion.FocusSessions)
	assert.Equal(t, PhaseShortBreak, engine.Phase())
	assert.Equal(t, time.Duration(0), engine.Elapsed())
}

func TestEngine_BreakCompletesIntoIdle(t *testing.T) {
	engine := NewEngine(testConfig())
	require.True(t, engine.Start())
	_, done := engine.Tick(25 * time.Minute)
	require.True(t, done)

	completion, done := engine.Tick(5 * time.Minute)

	require.True(t, done)
	assert.Equal(t, PhaseShortBreak, completion.Completed)
	assert.Equal(t, PhaseIdle, completion.Next)
	assert.Equal(t, PhaseIdle, engine.Phase())
	assert.Equal(t, 1, engine.CompletedSessions())
}

func TestEngine_FourthFocusTriggersLongBreak(t *testing.T) {
	engine := NewEngine(testConfig())

	for cycle := 1; cycle <= 4; cycle++ {
		require.True(t, engine.Start())
		completion, done := engine.Tick(25 * time.Minute)
		require.True(t, done, "cycle %d focus should complete", cycle)

		if cycle == 4 {
			assert.Equal(t, PhaseLongBreak, completion.Next)
			_, done = engine.Tick(30 * time.Minute)
		} else {
			assert.Equal(t, PhaseShortBreak, completion.Next)
			_, done = engine.Tick(5 * time.Minute)
		}
		require.True(t, done, "cycle %d break should complete", cycle)
	}

	assert.Equal(t, 4, engine.CompletedSessions())
}

func TestEngine_OversizedTickCompletesSinglePhase(t *testing.T) {
	engine := NewEngine(testConfig())
	require.True(t, engine.Start())

	completion, done := engine.Tick(2 * time.Hour)

	require.True(t, done)
	assert.Equal(t, PhaseFocus, completion.Completed)
	assert.Equal(t, PhaseShortBreak, engine.Phase())
	// Surplus is discarded: the break starts from zero
	assert.Equal(t, time.Duration(0), engine.Elapsed())
	assert.Equal(t, 1, engine.CompletedSessions())
}

func TestEngine_PausePreservesElapsed(t *testing.T) {
	engine := NewEngine(testConfig())
	require.True(t, engine.Start())
	engine.Tick(7 * time.Minute)

	engine.Pause()
	assert.Equal(t, PhasePaused, engine.Phase())
	assert.Equal(t, 7*time.Minute, engine.Elapsed())

	// Ticks are ignored while paused
	_, done := engine.Tick(time.Hour)
	assert.False(t, done)
	assert.Equal(t, 7*time.Minute, engine.Elapsed())

	engine.Resume()
	assert.Equal(t, PhaseFocus, engine.Phase())
	assert.Equal(t, 7*time.Minute, engine.Elapsed())
}

func TestEngine_PauseFromIdleIsNoOp(t *testing.T) {
	engine := NewEngine(testConfig())

	engine.Pause()

	assert.Equal(t, PhaseIdle, engine.Phase())
}

func TestEngine_StopResetsPhaseButKeepsSessions(t *testing.T) {
	engine := NewEngine(testConfig())
	require.True(t, engine.Start())
	_, done := engine.Tick(25 * time.Minute)
	require.True(t, done)

	engine.Stop()

	assert.Equal(t, PhaseIdle, engine.Phase())
	assert.Equal(t, time.Duration(0), engine.Elapsed())
	assert.Equal(t, 1, engine.CompletedSessions())
}

func TestEngine_SetConfigWhileIdleAppliesImmediately(t *testing.T) {
	engine := NewEngine(testConfig())

	newConfig := testConfig()
	newConfig.FocusDuration = 50 * time.Minute
	require.NoError(t, engine.SetConfig(newConfig))

	assert.Equal(t, 50*time.Minute, engine.Config().FocusDuration)
	require.True(t, engine.Start())
	_, done := engine.Tick(25 * time.Minute)
	assert.False(t, done, "new duration should govern the next focus phase")
}

func TestEngine_SetConfigMidPhaseAppliesAtNextEntry(t *testing.T) {
	engine := NewEngine(testConfig())
	require.True(t, engine.Start())
	engine.Tick(10 * time.Minute)

	shorter := testConfig()
	shorter.FocusDuration = 5 * time.Minute
	require.NoError(t, engine.SetConfig(shorter))

	// The running phase still uses the old duration
	assert.Equal(t, 25*time.Minute, engine.Config().FocusDuration)
	_, done := engine.Tick(5 * time.Minute)
	assert.False(t, done, "15m elapsed of the original 25m phase")

	_, done = engine.Tick(10 * time.Minute)
	require.True(t, done)

	// Staged config is active from the break entry onward
	assert.Equal(t, 5*time.Minute, engine.Config().FocusDuration)
}

func TestEngine_SetConfigRejectsInvalid(t *testing.T) {
	engine := NewEngine(testConfig())

	bad := testConfig()
	bad.FocusDuration = 0

	err := engine.SetConfig(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, 25*time.Minute, engine.Config().FocusDuration)
}

func TestEngine_RemainingClampsToZero(t *testing.T) {
	engine := NewEngine(testConfig())

	assert.Equal(t, 25*time.Minute, engine.Remaining(), "idle reports the upcoming focus duration")

	require.True(t, engine.Start())
	engine.Tick(20 * time.Minute)
	assert.Equal(t, 5*time.Minute, engine.Remaining())
}
