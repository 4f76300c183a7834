// SPDX-License-Identifier: Apache-2.0

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// psql builds dynamic queries with $N placeholders, matching the constant
// queries below.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	// enqueueEntry collapses repeated mutations of one row into a single
	// pending entry: the conflict target is the partial unique index over
	// unsynced (table_name, row_id). An insert followed by an update stays
	// an insert (the remote has never seen the row); any other later
	// operation replaces the pending one. created_at is kept so insertion
	// order survives the collapse; version is bumped on every collapse so
	// an in-flight drain cannot acknowledge a change it never pushed.
	enqueueEntry = `
		INSERT INTO sync_queue (table_name, row_id, operation)
		VALUES ($1, $2, $3)
		ON CONFLICT (table_name, row_id) WHERE synced = FALSE
		DO UPDATE SET
			operation = CASE
				WHEN sync_queue.operation = 'insert' AND excluded.operation = 'update'
					THEN sync_queue.operation
				ELSE excluded.operation
			END,
			version = sync_queue.version + 1;`

	getPendingEntries = `
		SELECT id, table_name, row_id, operation, synced, version, created_at
		FROM sync_queue
		WHERE synced = FALSE
		ORDER BY id;`

	countPendingEntries = `
		SELECT COUNT(*)
		FROM sync_queue
		WHERE synced = FALSE;`

	// markEntrySynced acknowledges exactly the version the drain read. A
	// mutation that collapsed into the entry mid-flight bumped the version,
	// so the entry stays pending and is pushed again on the next run.
	markEntrySynced = `
		UPDATE sync_queue
		SET synced = TRUE
		WHERE id = $1 AND version = $2 AND synced = FALSE;`

	clearSyncedEntries = `
		DELETE FROM sync_queue
		WHERE synced = TRUE;`

	resetQueue = `DELETE FROM sync_queue;`

	saveWorkout = `
		INSERT INTO workout (user_id, name, notes, performed_at, duration_min, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);`

	saveWorkoutSet = `
		INSERT INTO workout_set (workout_id, exercise_id, set_number, reps, weight_kg)
		VALUES ($1, $2, $3, $4, $5);`

	updateWorkout = `
		UPDATE workout SET
			name         = $1,
			notes        = $2,
			performed_at = $3,
			duration_min = $4,
			updated_at   = CURRENT_TIMESTAMP
		WHERE id = $5 AND user_id = $6;`

	deleteWorkoutSets = `
		DELETE FROM workout_set
		WHERE workout_id = $1;`

	deleteWorkout = `
		DELETE FROM workout
		WHERE id = $1 AND user_id = $2;`

	getWorkout = `
		SELECT id, user_id, name, notes, performed_at, duration_min, created_at, updated_at
		FROM workout
		WHERE id = $1 AND user_id = $2;`

	getAllWorkouts = `
		SELECT id, user_id, name, notes, performed_at, duration_min, created_at, updated_at
		FROM workout
		WHERE user_id = $1
		ORDER BY performed_at DESC;`

	getWorkoutSets = `
		SELECT id, workout_id, exercise_id, set_number, reps, weight_kg
		FROM workout_set
		WHERE workout_id = $1
		ORDER BY set_number;`

	replaceWorkout = `
		INSERT OR REPLACE INTO workout (id, user_id, name, notes, performed_at, duration_min, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	upsertDailyLog = `
		INSERT INTO daily_log (user_id, date, workout_count)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, date)
		DO UPDATE SET workout_count = daily_log.workout_count + 1;`

	decrementDailyLog = `
		UPDATE daily_log
		SET workout_count = MAX(workout_count - 1, 0)
		WHERE user_id = $1 AND date = $2;`

	getDailyLogForDate = `
		SELECT id, user_id, date, workout_count
		FROM daily_log
		WHERE user_id = $1 AND date = $2;`

	getDailyLog = `
		SELECT id, user_id, date, workout_count
		FROM daily_log
		WHERE id = $1 AND user_id = $2;`

	getAllDailyLogs = `
		SELECT id, user_id, date, workout_count
		FROM daily_log
		WHERE user_id = $1
		ORDER BY date DESC;`

	replaceDailyLog = `
		INSERT OR REPLACE INTO daily_log (id, user_id, date, workout_count)
		VALUES ($1, $2, $3, $4);`

	saveGoal = `
		INSERT INTO goal (user_id, kind, exercise_id, target_value, start_value, current_progress,
			start_date, end_date, achieved, achieved_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);`

	updateGoal = `
		UPDATE goal SET
			kind         = $1,
			exercise_id  = $2,
			target_value = $3,
			start_value  = $4,
			start_date   = $5,
			end_date     = $6,
			updated_at   = CURRENT_TIMESTAMP
		WHERE id = $7 AND user_id = $8;`

	updateGoalProgress = `
		UPDATE goal SET
			current_progress = $1,
			achieved         = $2,
			achieved_at      = $3,
			updated_at       = CURRENT_TIMESTAMP
		WHERE id = $4;`

	deleteGoal = `
		DELETE FROM goal
		WHERE id = $1 AND user_id = $2;`

	getGoal = `
		SELECT id, user_id, kind, exercise_id, target_value, start_value, current_progress,
			start_date, end_date, achieved, achieved_at, created_at, updated_at
		FROM goal
		WHERE id = $1 AND user_id = $2;`

	getAllGoals = `
		SELECT id, user_id, kind, exercise_id, target_value, start_value, current_progress,
			start_date, end_date, achieved, achieved_at, created_at, updated_at
		FROM goal
		WHERE user_id = $1
		ORDER BY created_at;`

	replaceGoal = `
		INSERT OR REPLACE INTO goal (id, user_id, kind, exercise_id, target_value, start_value,
			current_progress, start_date, end_date, achieved, achieved_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	saveMetric = `
		INSERT INTO user_metrics (user_id, recorded_at, weight_kg)
		VALUES ($1, $2, $3);`

	deleteMetric = `
		DELETE FROM user_metrics
		WHERE id = $1 AND user_id = $2;`

	getMetric = `
		SELECT id, user_id, recorded_at, weight_kg
		FROM user_metrics
		WHERE id = $1 AND user_id = $2;`

	getAllMetrics = `
		SELECT id, user_id, recorded_at, weight_kg
		FROM user_metrics
		WHERE user_id = $1
		ORDER BY recorded_at DESC;`

	latestMetric = `
		SELECT id, user_id, recorded_at, weight_kg
		FROM user_metrics
		WHERE user_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1;`

	replaceMetric = `
		INSERT OR REPLACE INTO user_metrics (id, user_id, recorded_at, weight_kg)
		VALUES ($1, $2, $3, $4);`

	getStreakByUser = `
		SELECT id, user_id, current, longest, last_activity, updated_at
		FROM streak
		WHERE user_id = $1;`

	getStreakByID = `
		SELECT id, user_id, current, longest, last_activity, updated_at
		FROM streak
		WHERE id = $1;`

	upsertStreak = `
		INSERT INTO streak (user_id, current, longest, last_activity, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id)
		DO UPDATE SET
			current       = excluded.current,
			longest       = excluded.longest,
			last_activity = excluded.last_activity,
			updated_at    = CURRENT_TIMESTAMP;`

	replaceStreak = `
		INSERT OR REPLACE INTO streak (id, user_id, current, longest, last_activity, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);`

	saveNotification = `
		INSERT INTO notification (user_id, kind, message, read, created_at)
		VALUES ($1, $2, $3, FALSE, CURRENT_TIMESTAMP);`

	markNotificationRead = `
		UPDATE notification
		SET read = TRUE
		WHERE id = $1 AND user_id = $2;`

	getNotification = `
		SELECT id, user_id, kind, message, read, created_at
		FROM notification
		WHERE id = $1 AND user_id = $2;`

	getAllNotifications = `
		SELECT id, user_id, kind, message, read, created_at
		FROM notification
		WHERE user_id = $1
		ORDER BY created_at DESC;`

	replaceNotification = `
		INSERT OR REPLACE INTO notification (id, user_id, kind, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);`

	saveSession = `
		INSERT INTO session (user_id, token, saved_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at;`

	getSession = `
		SELECT user_id, token, saved_at
		FROM session
		ORDER BY saved_at DESC
		LIMIT 1;`

	deleteSession = `DELETE FROM session;`
)

// buildCountInRange counts workouts performed in [from, to).
func buildCountInRange(userID int64, from, to time.Time) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From("workout").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"performed_at": from}).
		Where(sq.Lt{"performed_at": to}).
		ToSql()
}

// buildMaxWeightForExercise finds the heaviest set weight for one exercise in
// [from, to). COALESCE keeps the scan a plain float64 when no sets exist.
func buildMaxWeightForExercise(userID, exerciseID int64, from, to time.Time) (string, []any, error) {
	return psql.Select("COALESCE(MAX(ws.weight_kg), 0)").
		From("workout_set ws").
		Join("workout w ON w.id = ws.workout_id").
		Where(sq.Eq{"w.user_id": userID, "ws.exercise_id": exerciseID}).
		Where(sq.GtOrEq{"w.performed_at": from}).
		Where(sq.Lt{"w.performed_at": to}).
		ToSql()
}

// buildActivityDates lists distinct active dates, newest first.
func buildActivityDates(userID int64) (string, []any, error) {
	return psql.Select("date").
		From("daily_log").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Gt{"workout_count": 0}).
		OrderBy("date DESC").
		ToSql()
}
