// Package persistence provides SQLite-based save slot storage.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/graceworks/steeple/internal/engine"
	"github.com/graceworks/steeple/internal/entropy"
)

// ErrNoSave is returned when a requested slot holds no saved game.
var ErrNoSave = errors.New("no saved game in slot")

// DB wraps a SQLite connection for game state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		slot TEXT PRIMARY KEY,
		church_name TEXT NOT NULL,
		week INTEGER NOT NULL,
		attendance INTEGER NOT NULL,
		budget INTEGER NOT NULL,
		state_json TEXT NOT NULL,
		saved_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS weekly_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		slot TEXT NOT NULL,
		week INTEGER NOT NULL,
		attendance INTEGER NOT NULL,
		budget INTEGER NOT NULL,
		reputation INTEGER NOT NULL,
		morale INTEGER NOT NULL,
		net_income INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_slot_week ON weekly_history(slot, week);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveSlot is one row of the save listing.
type SaveSlot struct {
	Slot       string `db:"slot" json:"slot"`
	ChurchName string `db:"church_name" json:"churchName"`
	Week       int    `db:"week" json:"week"`
	Attendance int    `db:"attendance" json:"attendance"`
	Budget     int    `db:"budget" json:"budget"`
	SavedAt    string `db:"saved_at" json:"savedAt"`
}

// SaveGame writes the full game snapshot into a slot, replacing any
// previous save there.
func (db *DB) SaveGame(slot string, g *engine.Game) error {
	data, err := g.Snapshot()
	if err != nil {
		return err
	}

	stats, _ := g.CurrentStats()
	_, err = db.conn.Exec(`INSERT OR REPLACE INTO saves
		(slot, church_name, week, attendance, budget, state_json, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		slot, g.Name(), g.CurrentWeek(), stats.Attendance, stats.Budget,
		string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save slot %q: %w", slot, err)
	}

	slog.Info("game saved", "slot", slot, "week", g.CurrentWeek())
	return nil
}

// LoadGame restores the game saved in a slot, wired to the given source.
func (db *DB) LoadGame(slot string, rng *entropy.Rand) (*engine.Game, error) {
	var stateJSON string
	err := db.conn.Get(&stateJSON, "SELECT state_json FROM saves WHERE slot = ?", slot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("slot %q: %w", slot, ErrNoSave)
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %q: %w", slot, err)
	}

	g, err := engine.Restore([]byte(stateJSON), rng)
	if err != nil {
		return nil, fmt.Errorf("load slot %q: %w", slot, err)
	}

	slog.Info("game loaded", "slot", slot, "week", g.CurrentWeek())
	return g, nil
}

// DeleteSave removes a slot.
func (db *DB) DeleteSave(slot string) error {
	_, err := db.conn.Exec("DELETE FROM saves WHERE slot = ?", slot)
	return err
}

// ListSaves returns all save slots, most recent first.
func (db *DB) ListSaves() ([]SaveSlot, error) {
	var slots []SaveSlot
	err := db.conn.Select(&slots,
		`SELECT slot, church_name, week, attendance, budget, saved_at
		 FROM saves ORDER BY saved_at DESC`)
	return slots, err
}

// HistoryRow is one week's headline numbers.
type HistoryRow struct {
	Slot       string `db:"slot" json:"slot"`
	Week       int    `db:"week" json:"week"`
	Attendance int    `db:"attendance" json:"attendance"`
	Budget     int    `db:"budget" json:"budget"`
	Reputation int    `db:"reputation" json:"reputation"`
	Morale     int    `db:"morale" json:"morale"`
	NetIncome  int    `db:"net_income" json:"netIncome"`
}

// RecordWeek appends one completed tick's headline numbers. Unlike the
// in-memory financial history this table is unbounded, so long runs stay
// chartable.
func (db *DB) RecordWeek(slot string, g *engine.Game, res engine.WeekResult) error {
	stats, _ := g.CurrentStats()
	_, err := db.conn.Exec(`INSERT INTO weekly_history
		(slot, week, attendance, budget, reputation, morale, net_income)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		slot, res.Week, stats.Attendance, stats.Budget,
		stats.Reputation, stats.CongregationMorale, res.Net,
	)
	if err != nil {
		return fmt.Errorf("record week %d: %w", res.Week, err)
	}
	return nil
}

// History returns up to limit most recent weekly rows for a slot.
func (db *DB) History(slot string, limit int) ([]HistoryRow, error) {
	var rows []HistoryRow
	err := db.conn.Select(&rows,
		`SELECT slot, week, attendance, budget, reputation, morale, net_income
		 FROM weekly_history WHERE slot = ? ORDER BY week DESC LIMIT ?`,
		slot, limit)
	return rows, err
}
