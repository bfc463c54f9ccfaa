package domain

import "time"

// DateLayout is the key format for daily stat buckets
const DateLayout = "2006-01-02"

// DailyStat accumulates one calendar day's activity. Buckets are
// append-only: counters only ever accumulate, never recompute.
type DailyStat struct {
	Date              string
	FocusMinutes      int
	PointsNet         int
	SessionsCompleted int
	TasksCompleted    int
}

// LifetimeStat holds the all-time totals. Everything is monotonically
// non-decreasing except CurrentStreak, which resets after a missed day.
type LifetimeStat struct {
	CurrentStreak          int
	LastCompletionDate     string
	LongestStreak          int
	TotalFocusMinutes      int
	TotalSessionsCompleted int
}

// StatsSnapshot is the persisted form of the aggregator
type StatsSnapshot struct {
	Daily    []DailyStat
	Lifetime LifetimeStat
}

// Aggregator is a pure event sink for phase completions and score deltas.
// It owns the date-to-bucket mapping (insertion order = chronological) and
// all calendar/streak logic, keeping the timer engine free of dates.
type Aggregator struct {
	daily    map[string]*DailyStat
	lifetime LifetimeStat
	order    []string
}

// NewAggregator creates an empty aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{daily: make(map[string]*DailyStat)}
}

// RestoreAggregator rebuilds an aggregator from a snapshot. The snapshot
// is trusted as authoritative; nothing is recomputed from history.
func RestoreAggregator(snapshot StatsSnapshot) *Aggregator {
	a := NewAggregator()
	a.lifetime = snapshot.Lifetime
	for _, d := range snapshot.Daily {
		stat := d
		a.daily[d.Date] = &stat
		a.order = append(a.order, d.Date)
	}
	return a
}

// bucket returns the daily bucket for a date, creating it on first use
func (a *Aggregator) bucket(date string) *DailyStat {
	if stat, ok := a.daily[date]; ok {
		return stat
	}
	stat := &DailyStat{Date: date}
	a.daily[date] = stat
	a.order = append(a.order, date)
	return stat
}

// RecordFocusSession accumulates a completed focus session on the given
// date and applies the streak policy: exactly one calendar day after the
// last completion extends the streak, the same day leaves it unchanged,
// and a longer gap resets it to 1.
func (a *Aggregator) RecordFocusSession(date string, focusMinutes int) {
	stat := a.bucket(date)
	stat.FocusMinutes += focusMinutes
	stat.SessionsCompleted++

	a.lifetime.TotalFocusMinutes += focusMinutes
	a.lifetime.TotalSessionsCompleted++

	switch daysSince(a.lifetime.LastCompletionDate, date) {
	case 0:
		// Same day, streak unchanged
	case 1:
		a.lifetime.CurrentStreak++
	default:
		a.lifetime.CurrentStreak = 1
	}
	if a.lifetime.CurrentStreak > a.lifetime.LongestStreak {
		a.lifetime.LongestStreak = a.lifetime.CurrentStreak
	}
	a.lifetime.LastCompletionDate = date
}

// RecordScoreDelta accumulates a task completion toggle on the given date
func (a *Aggregator) RecordScoreDelta(date string, delta ScoreDelta) {
	stat := a.bucket(date)
	stat.PointsNet += delta.Points
	if delta.Completing {
		stat.TasksCompleted++
	} else {
		stat.TasksCompleted--
	}
}

// Daily returns the daily buckets in chronological (insertion) order
func (a *Aggregator) Daily() []DailyStat {
	result := make([]DailyStat, 0, len(a.order))
	for _, date := range a.order {
		result = append(result, *a.daily[date])
	}
	return result
}

// DailyFor returns the bucket for a date, zero-valued when absent
func (a *Aggregator) DailyFor(date string) DailyStat {
	if stat, ok := a.daily[date]; ok {
		return *stat
	}
	return DailyStat{Date: date}
}

// Lifetime returns the all-time totals
func (a *Aggregator) Lifetime() LifetimeStat { return a.lifetime }

// Snapshot returns the persistable form of the aggregator
func (a *Aggregator) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Daily:    a.Daily(),
		Lifetime: a.lifetime,
	}
}

// daysSince returns the whole calendar days from last to current, or -1
// when last is empty or unparseable (treated as a streak reset).
func daysSince(last, current string) int {
	if last == "" {
		return -1
	}
	from, err := time.Parse(DateLayout, last)
	if err != nil {
		return -1
	}
	to, err := time.Parse(DateLayout, current)
	if err != nil {
		return -1
	}
	return int(to.Sub(from).Hours() / 24)
}
