package barcache

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"TrendScope/internal/logger"
	"TrendScope/internal/model"
)

// SQLiteCache persists downloaded bars to a SQLite database.
type SQLiteCache struct {
	db  *sql.DB
	mu  sync.Mutex
	now func() time.Time
}

// NewSQLiteCache opens (or creates) the SQLite database and runs migrations.
func NewSQLiteCache(dbPath string) (*SQLiteCache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, errors.Wrap(err, "create cache dir")
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "set WAL mode")
	}

	c := &SQLiteCache{db: db, now: time.Now}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "migrate")
	}

	logger.Info("sqlite bar cache opened: %s", dbPath)
	return c, nil
}

func (c *SQLiteCache) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS fetches (
			symbol     TEXT NOT NULL,
			period     TEXT NOT NULL,
			interval   TEXT NOT NULL,
			fetched_at INTEGER NOT NULL,
			bar_count  INTEGER NOT NULL,
			PRIMARY KEY (symbol, period, interval)
		)`,
		`CREATE TABLE IF NOT EXISTS bars (
			symbol   TEXT NOT NULL,
			period   TEXT NOT NULL,
			interval TEXT NOT NULL,
			ts       INTEGER NOT NULL,
			open     REAL,
			high     REAL,
			low      REAL,
			close    REAL,
			volume   REAL,
			PRIMARY KEY (symbol, period, interval, ts)
		)`,
	}

	for _, s := range stmts {
		if _, err := c.db.Exec(s); err != nil {
			return errors.Wrapf(err, "exec %q", s[:40])
		}
	}
	return nil
}

func (c *SQLiteCache) Get(ctx context.Context, key Key, maxAge time.Duration) (*Entry, error) {
	if maxAge <= 0 {
		return nil, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var fetchedAt int64
	var count int
	err := c.db.QueryRowContext(ctx,
		`SELECT fetched_at, bar_count FROM fetches WHERE symbol = ? AND period = ? AND interval = ?`,
		key.Symbol, key.Period, key.Interval,
	).Scan(&fetchedAt, &count)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read fetch record")
	}
	fetched := time.Unix(fetchedAt, 0).UTC()
	if c.now().Sub(fetched) > maxAge {
		return nil, nil
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT ts, open, high, low, close, volume FROM bars
		 WHERE symbol = ? AND period = ? AND interval = ? ORDER BY ts`,
		key.Symbol, key.Period, key.Interval,
	)
	if err != nil {
		return nil, errors.Wrap(err, "query bars")
	}
	defer rows.Close()

	bars := make([]model.OHLCV, 0, count)
	for rows.Next() {
		var ts int64
		var b model.OHLCV
		if err := rows.Scan(&ts, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, errors.Wrap(err, "scan bar")
		}
		b.Time = time.Unix(ts, 0).UTC()
		bars = append(bars, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate bars")
	}
	if len(bars) != count || count == 0 {
		return nil, nil
	}
	return &Entry{Bars: bars, FetchedAt: fetched}, nil
}

func (c *SQLiteCache) Put(ctx context.Context, key Key, bars []model.OHLCV) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM bars WHERE symbol = ? AND period = ? AND interval = ?`,
		key.Symbol, key.Period, key.Interval,
	); err != nil {
		return errors.Wrap(err, "clear bars")
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO bars
		(symbol, period, interval, ts, open, high, low, close, volume)
		VALUES (?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()

	seen := make(map[int64]struct{}, len(bars))
	for _, b := range bars {
		ts := b.Time.Unix()
		seen[ts] = struct{}{}
		if _, err := stmt.ExecContext(ctx,
			key.Symbol, key.Period, key.Interval, ts,
			b.Open, b.High, b.Low, b.Close, b.Volume,
		); err != nil {
			return errors.Wrap(err, "insert bar")
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO fetches (symbol, period, interval, fetched_at, bar_count)
		VALUES (?,?,?,?,?)
		ON CONFLICT (symbol, period, interval)
		DO UPDATE SET fetched_at = excluded.fetched_at, bar_count = excluded.bar_count`,
		key.Symbol, key.Period, key.Interval, c.now().Unix(), len(seen),
	); err != nil {
		return errors.Wrap(err, "record fetch")
	}
	return errors.Wrap(tx.Commit(), "commit")
}

func (c *SQLiteCache) Close() error {
	logger.Info("closing sqlite bar cache")
	return c.db.Close()
}
