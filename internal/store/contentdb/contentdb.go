package contentdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"postcraft/internal/model"
)

// ErrNotFound is returned when a post id does not exist.
var ErrNotFound = errors.New("not found")

// DB wraps the SQLite database backing the content library.
type DB struct{ sql *sql.DB }

func Open(path string) (*DB, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := d.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		return nil, err
	}
	db := &DB{sql: d}
	if err := db.migrate(); err != nil {
		_ = d.Close()
		return nil, err
	}
	return db, nil
}

func (d *DB) Close() error { return d.sql.Close() }

func (d *DB) migrate() error {
	_, err := d.sql.Exec(`
	CREATE TABLE IF NOT EXISTS posts (
	  id TEXT PRIMARY KEY,
	  topic TEXT NOT NULL,
	  platform TEXT NOT NULL,
	  tone TEXT,
	  content TEXT NOT NULL,
	  viral_score INTEGER NOT NULL DEFAULT 0,
	  hashtags TEXT,
	  status TEXT NOT NULL,
	  published_at INTEGER,
	  created_at INTEGER NOT NULL,
	  updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_posts_status ON posts(status);
	CREATE TABLE IF NOT EXISTS schedules (
	  post_id TEXT PRIMARY KEY,
	  scheduled_at INTEGER NOT NULL,
	  recurrence TEXT,
	  end_at INTEGER
	);
	CREATE INDEX IF NOT EXISTS idx_schedules_at ON schedules(scheduled_at);
	CREATE TABLE IF NOT EXISTS actions (
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  ts INTEGER NOT NULL,
	  type TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_actions_ts ON actions(ts);
	CREATE TABLE IF NOT EXISTS cursors (
	  k TEXT PRIMARY KEY,
	  v TEXT NOT NULL
	);
	`)
	return err
}

// CreatePost stores a new post, assigning an id and timestamps.
func (d *DB) CreatePost(ctx context.Context, p model.Post) (model.Post, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	if p.Status == "" {
		p.Status = model.PostStatusDraft
	}
	tags, _ := json.Marshal(p.Hashtags)
	_, err := d.sql.ExecContext(ctx, `INSERT INTO posts(id, topic, platform, tone, content, viral_score, hashtags, status, published_at, created_at, updated_at)
		VALUES(?,?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.Topic, string(p.Platform), string(p.Tone), p.Content, p.ViralScore, string(tags), p.Status,
		nullUnix(p.PublishedAt), p.CreatedAt.Unix(), p.UpdatedAt.Unix())
	return p, err
}

// GetPost loads one post by id.
func (d *DB) GetPost(ctx context.Context, id string) (model.Post, error) {
	row := d.sql.QueryRowContext(ctx, `SELECT id, topic, platform, tone, content, viral_score, hashtags, status, published_at, created_at, updated_at FROM posts WHERE id=?`, id)
	p, err := scanPost(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	return p, err
}

// ListPosts returns posts, optionally filtered by status, newest first.
func (d *DB) ListPosts(ctx context.Context, status string) ([]model.Post, error) {
	var rows *sql.Rows
	var err error
	if status == "" {
		rows, err = d.sql.QueryContext(ctx, `SELECT id, topic, platform, tone, content, viral_score, hashtags, status, published_at, created_at, updated_at FROM posts ORDER BY created_at DESC`)
	} else {
		rows, err = d.sql.QueryContext(ctx, `SELECT id, topic, platform, tone, content, viral_score, hashtags, status, published_at, created_at, updated_at FROM posts WHERE status=? ORDER BY created_at DESC`, status)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Post
	for rows.Next() {
		p, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdatePost rewrites a post's mutable fields.
func (d *DB) UpdatePost(ctx context.Context, p model.Post) error {
	tags, _ := json.Marshal(p.Hashtags)
	res, err := d.sql.ExecContext(ctx, `UPDATE posts SET topic=?, platform=?, tone=?, content=?, viral_score=?, hashtags=?, status=?, published_at=?, updated_at=? WHERE id=?`,
		p.Topic, string(p.Platform), string(p.Tone), p.Content, p.ViralScore, string(tags), p.Status,
		nullUnix(p.PublishedAt), time.Now().UTC().Unix(), p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePost removes a post and any schedule it carries.
func (d *DB) DeletePost(ctx context.Context, id string) error {
	if _, err := d.sql.ExecContext(ctx, `DELETE FROM schedules WHERE post_id=?`, id); err != nil {
		return err
	}
	res, err := d.sql.ExecContext(ctx, `DELETE FROM posts WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveSchedule upserts the schedule entry for a post.
func (d *DB) SaveSchedule(ctx context.Context, e model.ScheduleEntry) error {
	_, err := d.sql.ExecContext(ctx, `INSERT INTO schedules(post_id, scheduled_at, recurrence, end_at) VALUES(?,?,?,?)
		ON CONFLICT(post_id) DO UPDATE SET scheduled_at=excluded.scheduled_at, recurrence=excluded.recurrence, end_at=excluded.end_at`,
		e.PostID, e.ScheduledAt.Unix(), string(e.Recurrence), nullUnix(e.EndAt))
	return err
}

// ListSchedules returns all schedule entries ordered by time.
func (d *DB) ListSchedules(ctx context.Context) ([]model.ScheduleEntry, error) {
	rows, err := d.sql.QueryContext(ctx, `SELECT post_id, scheduled_at, recurrence, end_at FROM schedules ORDER BY scheduled_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSchedules(rows)
}

// DueSchedules returns entries whose scheduled time is at or before now.
func (d *DB) DueSchedules(ctx context.Context, now time.Time) ([]model.ScheduleEntry, error) {
	rows, err := d.sql.QueryContext(ctx, `SELECT post_id, scheduled_at, recurrence, end_at FROM schedules WHERE scheduled_at<=? ORDER BY scheduled_at`, now.Unix())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSchedules(rows)
}

// DeleteSchedule removes the schedule entry for a post.
func (d *DB) DeleteSchedule(ctx context.Context, postID string) error {
	_, err := d.sql.ExecContext(ctx, `DELETE FROM schedules WHERE post_id=?`, postID)
	return err
}

// PutAction records a quota-relevant action.
func (d *DB) PutAction(ctx context.Context, ts time.Time, typ string) error {
	_, err := d.sql.ExecContext(ctx, `INSERT INTO actions(ts, type) VALUES(?,?)`, ts.Unix(), typ)
	return err
}

// CountActionsWithin counts actions of a type in [start, end).
func (d *DB) CountActionsWithin(ctx context.Context, start, end time.Time, typ string) (int, error) {
	row := d.sql.QueryRowContext(ctx, `SELECT COUNT(1) FROM actions WHERE ts>=? AND ts<? AND type=?`, start.Unix(), end.Unix(), typ)
	var n int
	err := row.Scan(&n)
	return n, err
}

// SaveCursor stores a named cursor value.
func (d *DB) SaveCursor(ctx context.Context, key, val string) error {
	_, err := d.sql.ExecContext(ctx, `INSERT INTO cursors(k, v) VALUES(?,?) ON CONFLICT(k) DO UPDATE SET v=excluded.v`, key, val)
	return err
}

// LoadCursor returns a named cursor value, or empty when unset.
func (d *DB) LoadCursor(ctx context.Context, key string) (string, error) {
	row := d.sql.QueryRowContext(ctx, `SELECT v FROM cursors WHERE k=?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return v, nil
}

func scanPost(scan func(dest ...any) error) (model.Post, error) {
	var p model.Post
	var platform, tone, tags string
	var published sql.NullInt64
	var created, updated int64
	if err := scan(&p.ID, &p.Topic, &platform, &tone, &p.Content, &p.ViralScore, &tags, &p.Status, &published, &created, &updated); err != nil {
		return p, err
	}
	p.Platform = model.Platform(platform)
	p.Tone = model.Tone(tone)
	if tags != "" {
		_ = json.Unmarshal([]byte(tags), &p.Hashtags)
	}
	if published.Valid {
		p.PublishedAt = time.Unix(published.Int64, 0).UTC()
	}
	p.CreatedAt = time.Unix(created, 0).UTC()
	p.UpdatedAt = time.Unix(updated, 0).UTC()
	return p, nil
}

func scanSchedules(rows *sql.Rows) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	for rows.Next() {
		var e model.ScheduleEntry
		var at int64
		var rec string
		var end sql.NullInt64
		if err := rows.Scan(&e.PostID, &at, &rec, &end); err != nil {
			return nil, err
		}
		e.ScheduledAt = time.Unix(at, 0).UTC()
		e.Recurrence = model.Recurrence(rec)
		if end.Valid {
			e.EndAt = time.Unix(end.Int64, 0).UTC()
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func nullUnix(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Unix()
}
