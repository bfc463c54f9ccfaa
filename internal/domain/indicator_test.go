package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Indicator(t *testing.T) {
	tests := []struct {
		name    string
		arrange func(e *Engine)
		want    Indicator
	}{
		{
			"idle",
			func(e *Engine) {},
			IndicatorIdle,
		},
		{
			"focus just started",
			func(e *Engine) { e.Start() },
			IndicatorFocus,
		},
		{
			"focus nearing the end",
			func(e *Engine) {
				e.Start()
				e.Tick(24*time.Minute + 30*time.Second)
			},
			IndicatorWarning,
		},
		{
			"short break",
			func(e *Engine) {
				e.Start()
				e.Tick(25 * time.Minute)
			},
			IndicatorBreak,
		},
		{
			"short break nearing the end",
			func(e *Engine) {
				e.Start()
				e.Tick(25 * time.Minute)
				e.Tick(4*time.Minute + 45*time.Second)
			},
			IndicatorWarning,
		},
		{
			"paused focus keeps the focus indicator",
			func(e *Engine) {
				e.Start()
				e.Tick(5 * time.Minute)
				e.Pause()
			},
			IndicatorFocus,
		},
		{
			"paused inside the warning window keeps warning",
			func(e *Engine) {
				e.Start()
				e.Tick(24*time.Minute + 30*time.Second)
				e.Pause()
			},
			IndicatorWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(testConfig())
			tt.arrange(engine)
			assert.Equal(t, tt.want, engine.Indicator())
		})
	}
}

func TestEngine_IndicatorWarningWindowIsCapped(t *testing.T) {
	config := testConfig()
	config.FocusDuration = 2 * time.Hour
	engine := NewEngine(config)
	require.True(t, engine.Start())

	// 10% of two hours is 12 minutes, but the window is capped at one minute
	engine.Tick(2*time.Hour - 5*time.Minute)
	assert.Equal(t, IndicatorFocus, engine.Indicator())

	engine.Tick(4*time.Minute + 30*time.Second)
	assert.Equal(t, IndicatorWarning, engine.Indicator())
}
