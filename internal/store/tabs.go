package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var errQuery = errors.New("tab activity query error")

// Activity is one route's accumulated activation history.
type Activity struct {
	RouteKey     string
	Activations  int64
	LastActiveOn time.Time
}

// Tabs persists per-route activation history, used both to restore the last
// active tab on startup and to feed the activity pane.
type Tabs struct {
	db *sql.DB
}

func NewTabs(db *sql.DB) *Tabs {
	return &Tabs{db: db}
}

// RecordActivation bumps the activation count and freshness of a route.
func (t *Tabs) RecordActivation(ctx context.Context, routeKey string) error {
	const query = `
		INSERT INTO tab_activity (route_key, activations, last_active_on)
		VALUES (?, 1, ?)
		ON CONFLICT (route_key) DO UPDATE
		SET activations = activations + 1, last_active_on = excluded.last_active_on`

	if _, err := t.db.ExecContext(ctx, query, routeKey, time.Now()); err != nil {
		return errors.Join(err, errQuery)
	}

	return nil
}

// LastRoute returns the most recently activated route key, or "" when no
// history exists yet.
func (t *Tabs) LastRoute(ctx context.Context) (string, error) {
	const query = `
		SELECT route_key FROM tab_activity
		ORDER BY last_active_on DESC LIMIT 1`

	var key string
	if err := t.db.QueryRowContext(ctx, query).Scan(&key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", errors.Join(err, errQuery)
	}

	return key, nil
}

// Activities returns per-route history ordered by activation count.
func (t *Tabs) Activities(ctx context.Context) ([]Activity, error) {
	const query = `
		SELECT route_key, activations, last_active_on FROM tab_activity
		ORDER BY activations DESC, route_key`

	rows, errRows := t.db.QueryContext(ctx, query)
	if errRows != nil {
		return nil, errors.Join(errRows, errQuery)
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		var activity Activity
		if err := rows.Scan(&activity.RouteKey, &activity.Activations, &activity.LastActiveOn); err != nil {
			return nil, errors.Join(err, errQuery)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Join(err, errQuery)
	}

	return activities, nil
}
