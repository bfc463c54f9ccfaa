package ports

// StateRepository is the composite persistence interface backed by a
// single database
type StateRepository interface {
	TaskStore
	StatsStore
	TimerConfigStore
	Close() error
}
