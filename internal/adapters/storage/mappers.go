package storage

import (
	"time"

	"focusflow/internal/domain"
)

// singletonID is the primary key of the single-row tables
const singletonID = 1

func taskModelToDomain(model TaskModel) domain.Task {
	return domain.Task{
		Completed: model.Completed,
		ID:        model.ID,
		Points:    model.Points,
		Text:      model.Text,
	}
}

func domainToTaskModel(task domain.Task, position int) TaskModel {
	return TaskModel{
		Completed: task.Completed,
		ID:        task.ID,
		Points:    task.Points,
		Position:  position,
		Text:      task.Text,
	}
}

func undoEntryModelToDomain(model UndoEntryModel) domain.UndoEntry {
	return domain.UndoEntry{
		Index: model.Position,
		Task: domain.Task{
			Completed: model.Completed,
			ID:        model.TaskID,
			Points:    model.Points,
			Text:      model.Text,
		},
	}
}

func domainToUndoEntryModel(entry domain.UndoEntry) UndoEntryModel {
	return UndoEntryModel{
		Completed: entry.Task.Completed,
		ID:        singletonID,
		Points:    entry.Task.Points,
		Position:  entry.Index,
		TaskID:    entry.Task.ID,
		Text:      entry.Task.Text,
	}
}

func dailyStatModelToDomain(model DailyStatModel) domain.DailyStat {
	return domain.DailyStat{
		Date:              model.Date,
		FocusMinutes:      model.FocusMinutes,
		PointsNet:         model.PointsNet,
		SessionsCompleted: model.SessionsCompleted,
		TasksCompleted:    model.TasksCompleted,
	}
}

func domainToDailyStatModel(stat domain.DailyStat) DailyStatModel {
	return DailyStatModel{
		Date:              stat.Date,
		FocusMinutes:      stat.FocusMinutes,
		PointsNet:         stat.PointsNet,
		SessionsCompleted: stat.SessionsCompleted,
		TasksCompleted:    stat.TasksCompleted,
	}
}

func lifetimeStatModelToDomain(model LifetimeStatModel) domain.LifetimeStat {
	return domain.LifetimeStat{
		CurrentStreak:          model.CurrentStreak,
		LastCompletionDate:     model.LastCompletionDate,
		LongestStreak:          model.LongestStreak,
		TotalFocusMinutes:      model.TotalFocusMinutes,
		TotalSessionsCompleted: model.TotalSessionsCompleted,
	}
}

func domainToLifetimeStatModel(stat domain.LifetimeStat) LifetimeStatModel {
	return LifetimeStatModel{
		CurrentStreak:          stat.CurrentStreak,
		ID:                     singletonID,
		LastCompletionDate:     stat.LastCompletionDate,
		LongestStreak:          stat.LongestStreak,
		TotalFocusMinutes:      stat.TotalFocusMinutes,
		TotalSessionsCompleted: stat.TotalSessionsCompleted,
	}
}

func timerConfigModelToDomain(model TimerConfigModel) domain.TimerConfig {
	return domain.TimerConfig{
		FocusDuration:           time.Duration(model.FocusSeconds) * time.Second,
		LongBreakDuration:       time.Duration(model.LongBreakSeconds) * time.Second,
		SessionsBeforeLongBreak: model.SessionsBeforeLongBreak,
		ShortBreakDuration:      time.Duration(model.ShortBreakSeconds) * time.Second,
	}
}

func domainToTimerConfigModel(config domain.TimerConfig) TimerConfigModel {
	return TimerConfigModel{
		FocusSeconds:            int(config.FocusDuration / time.Second),
		ID:                      singletonID,
		LongBreakSeconds:        int(config.LongBreakDuration / time.Second),
		SessionsBeforeLongBreak: config.SessionsBeforeLongBreak,
		ShortBreakSeconds:       int(config.ShortBreakDuration / time.Second),
	}
}
