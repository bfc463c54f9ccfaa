package storage

import "time"

// TaskModel is the GORM model for the tasks table
type TaskModel struct {
	Completed bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	ID        int    `gorm:"primaryKey;autoIncrement:false"`
	Points    int    `gorm:"not null;default:0"`
	Position  int    `gorm:"not null;default:0;index:idx_task_position"`
	Text      string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (TaskModel) TableName() string { return "tasks" }

// UndoEntryModel is the GORM model for the single-slot undo buffer.
// A single row with ID 1 holds the last deleted task and its position;
// no row means the buffer is empty.
type UndoEntryModel struct {
	Completed bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	ID        int    `gorm:"primaryKey;autoIncrement:false"`
	Points    int    `gorm:"not null;default:0"`
	Position  int    `gorm:"not null;default:0"`
	TaskID    int    `gorm:"not null"`
	Text      string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (UndoEntryModel) TableName() string { return "undo_entries" }

// DailyStatModel is the GORM model for per-day statistics
type DailyStatModel struct {
	CreatedAt         time.Time
	Date              string `gorm:"primaryKey"`
	FocusMinutes      int    `gorm:"not null;default:0"`
	PointsNet         int    `gorm:"not null;default:0"`
	SessionsCompleted int    `gorm:"not null;default:0"`
	TasksCompleted    int    `gorm:"not null;default:0"`
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (DailyStatModel) TableName() string { return "daily_stats" }

// LifetimeStatModel is the GORM model for the all-time totals.
// A single row with ID 1 holds the current values.
type LifetimeStatModel struct {
	CreatedAt              time.Time
	CurrentStreak          int    `gorm:"not null;default:0"`
	ID                     int    `gorm:"primaryKey;autoIncrement:false"`
	LastCompletionDate     string `gorm:"not null;default:''"`
	LongestStreak          int    `gorm:"not null;default:0"`
	TotalFocusMinutes      int    `gorm:"not null;default:0"`
	TotalSessionsCompleted int    `gorm:"not null;default:0"`
	UpdatedAt              time.Time
}

// TableName specifies the table name for GORM
func (LifetimeStatModel) TableName() string { return "lifetime_stats" }

// TimerConfigModel is the GORM model for the timer configuration.
// A single row with ID 1 holds the current values; durations are stored
// in seconds.
type TimerConfigModel struct {
	CreatedAt               time.Time
	FocusSeconds            int `gorm:"not null"`
	ID                      int `gorm:"primaryKey;autoIncrement:false"`
	LongBreakSeconds        int `gorm:"not null"`
	SessionsBeforeLongBreak int `gorm:"not null"`
	ShortBreakSeconds       int `gorm:"not null"`
	UpdatedAt               time.Time
}

// TableName specifies the table name for GORM
func (TimerConfigModel) TableName() string { return "timer_configs" }
