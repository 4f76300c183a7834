package models

// Names of the local tables that are mirrored to the remote store. Remote
// collections use the same names; documents are keyed by the stringified
// local row id.
const (
	TableWorkout      = "workout"
	TableGoal         = "goal"
	TableUserMetrics  = "user_metrics"
	TableDailyLog     = "daily_log"
	TableStreak       = "streak"
	TableNotification = "notification"
)

// SyncedTables lists every table that participates in queue-based sync, in
// the order collections are processed during pulls and cloud resets.
var SyncedTables = []string{
	TableWorkout,
	TableGoal,
	TableUserMetrics,
	TableDailyLog,
	TableStreak,
	TableNotification,
}

// IsSyncedTable reports whether name is one of the syncable tables.
func IsSyncedTable(name string) bool {
	for _, t := range SyncedTables {
		if t == name {
			return true
		}
	}
	return false
}
