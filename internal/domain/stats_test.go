package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_RecordFocusSession(t *testing.T) {
	agg := NewAggregator()

	agg.RecordFocusSession("2026-08-20", 25)
	agg.RecordFocusSession("2026-08-20", 25)

	day := agg.DailyFor("2026-08-20")
	assert.Equal(t, 50, day.FocusMinutes)
	assert.Equal(t, 2, day.SessionsCompleted)

	lifetime := agg.Lifetime()
	assert.Equal(t, 50, lifetime.TotalFocusMinutes)
	assert.Equal(t, 2, lifetime.TotalSessionsCompleted)
	assert.Equal(t, "2026-08-20", lifetime.LastCompletionDate)
}

func TestAggregator_StreakPolicy(t *testing.T) {
	tests := []struct {
		name        string
		dates       []string
		wantCurrent int
		wantLongest int
	}{
		{"first ever session", []string{"2026-08-20"}, 1, 1},
		{"same day does not extend", []string{"2026-08-20", "2026-08-20"}, 1, 1},
		{"consecutive days extend", []string{"2026-08-20", "2026-08-21", "2026-08-22"}, 3, 3},
		{"one missed day resets", []string{"2026-08-20", "2026-08-21", "2026-08-23"}, 1, 2},
		{"longest survives a reset", []string{"2026-08-10", "2026-08-11", "2026-08-12", "2026-08-20", "2026-08-21"}, 2, 3},
		{"month boundary counts as consecutive", []string{"2026-08-31", "2026-09-01"}, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregator()
			for _, date := range tt.dates {
				agg.RecordFocusSession(date, 25)
			}
			lifetime := agg.Lifetime()
			assert.Equal(t, tt.wantCurrent, lifetime.CurrentStreak)
			assert.Equal(t, tt.wantLongest, lifetime.LongestStreak)
		})
	}
}

func TestAggregator_RecordScoreDelta(t *testing.T) {
	agg := NewAggregator()

	agg.RecordScoreDelta("2026-08-20", ScoreDelta{Completing: true, Points: 10, TaskID: 1})
	agg.RecordScoreDelta("2026-08-20", ScoreDelta{Completing: true, Points: 5, TaskID: 2})

	day := agg.DailyFor("2026-08-20")
	assert.Equal(t, 15, day.PointsNet)
	assert.Equal(t, 2, day.TasksCompleted)
}

func TestAggregator_UncompletionReversesTheDay(t *testing.T) {
	agg := NewAggregator()

	agg.RecordScoreDelta("2026-08-20", ScoreDelta{Completing: true, Points: 10, TaskID: 1})
	agg.RecordScoreDelta("2026-08-20", ScoreDelta{Completing: false, Points: -10, TaskID: 1})

	day := agg.DailyFor("2026-08-20")
	assert.Equal(t, 0, day.PointsNet)
	assert.Equal(t, 0, day.TasksCompleted)
}

func TestAggregator_UncompletionOnALaterDayGoesNegative(t *testing.T) {
	agg := NewAggregator()

	agg.RecordScoreDelta("2026-08-20", ScoreDelta{Completing: true, Points: 10, TaskID: 1})
	agg.RecordScoreDelta("2026-08-21", ScoreDelta{Completing: false, Points: -10, TaskID: 1})

	assert.Equal(t, 10, agg.DailyFor("2026-08-20").PointsNet)
	assert.Equal(t, -10, agg.DailyFor("2026-08-21").PointsNet)
	assert.Equal(t, -1, agg.DailyFor("2026-08-21").TasksCompleted)
}

func TestAggregator_DailyPreservesInsertionOrder(t *testing.T) {
	agg := NewAggregator()
	agg.RecordFocusSession("2026-08-20", 25)
	agg.RecordScoreDelta("2026-08-21", ScoreDelta{Completing: true, Points: 10})
	agg.RecordFocusSession("2026-08-22", 25)
	agg.RecordFocusSession("2026-08-20", 25)

	daily := agg.Daily()

	require.Len(t, daily, 3)
	assert.Equal(t, "2026-08-20", daily[0].Date)
	assert.Equal(t, "2026-08-21", daily[1].Date)
	assert.Equal(t, "2026-08-22", daily[2].Date)
	assert.Equal(t, 50, daily[0].FocusMinutes)
}

func TestAggregator_DailyForAbsentDateIsZeroValued(t *testing.T) {
	agg := NewAggregator()

	day := agg.DailyFor("2026-01-01")

	assert.Equal(t, DailyStat{Date: "2026-01-01"}, day)
}

func TestAggregator_SnapshotRoundTrip(t *testing.T) {
	agg := NewAggregator()
	agg.RecordFocusSession("2026-08-20", 25)
	agg.RecordFocusSession("2026-08-21", 25)
	agg.RecordScoreDelta("2026-08-21", ScoreDelta{Completing: true, Points: 10})

	restored := RestoreAggregator(agg.Snapshot())

	assert.Equal(t, agg.Lifetime(), restored.Lifetime())
	assert.Equal(t, agg.Daily(), restored.Daily())

	// The restored streak state keeps accumulating correctly
	restored.RecordFocusSession("2026-08-22", 25)
	assert.Equal(t, 3, restored.Lifetime().CurrentStreak)
}

func TestAggregator_RestoredSnapshotIsAuthoritative(t *testing.T) {
	snapshot := StatsSnapshot{
		Daily: []DailyStat{{Date: "2026-08-19", SessionsCompleted: 1}},
		Lifetime: LifetimeStat{
			CurrentStreak:          5,
			LastCompletionDate:     "2026-08-19",
			LongestStreak:          9,
			TotalFocusMinutes:      300,
			TotalSessionsCompleted: 12,
		},
	}

	agg := RestoreAggregator(snapshot)
	agg.RecordFocusSession("2026-08-20", 25)

	lifetime := agg.Lifetime()
	assert.Equal(t, 6, lifetime.CurrentStreak, "streak continues from the snapshot, not from history")
	assert.Equal(t, 9, lifetime.LongestStreak)
	assert.Equal(t, 325, lifetime.TotalFocusMinutes)
}
