package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sadopc/studycycle/internal/cycle"
)

// SaveCycle replaces the stored cycle with st and appends a snapshot of it.
func (s *Store) SaveCycle(st cycle.State) (*Snapshot, error) {
	data, err := cycle.Marshal(st)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin save cycle: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO cycle (id, weekly_hours, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET weekly_hours = excluded.weekly_hours, updated_at = excluded.updated_at`,
		st.WeeklyHours, now,
	)
	if err != nil {
		return nil, fmt.Errorf("save weekly hours: %w", err)
	}

	for _, d := range cycle.Weekdays() {
		_, err = tx.Exec(
			`INSERT INTO cycle_days (day, position, hours) VALUES (?, ?, ?)
			 ON CONFLICT(day) DO UPDATE SET hours = excluded.hours`,
			d.String(), int(d), st.DailyHours[d],
		)
		if err != nil {
			return nil, fmt.Errorf("save %s hours: %w", d, err)
		}
	}

	if _, err := tx.Exec(`DELETE FROM subjects`); err != nil {
		return nil, fmt.Errorf("clear subjects: %w", err)
	}
	for i, subj := range st.Subjects {
		_, err = tx.Exec(
			`INSERT INTO subjects (id, name, percentage, position) VALUES (?, ?, ?, ?)`,
			subj.ID, subj.Name, subj.Percentage, i,
		)
		if err != nil {
			return nil, fmt.Errorf("save subject %q: %w", subj.Name, err)
		}
	}

	res, err := tx.Exec(`INSERT INTO cycle_snapshots (saved_at, data) VALUES (?, ?)`, now, string(data))
	if err != nil {
		return nil, fmt.Errorf("insert snapshot: %w", err)
	}
	if _, err := tx.Exec(upsertSetting, keyHasStudyCycle, "1"); err != nil {
		return nil, fmt.Errorf("mark cycle saved: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit save cycle: %w", err)
	}

	id, _ := res.LastInsertId()
	return s.GetSnapshot(id)
}

// LoadCycle returns the stored cycle, or an empty one if nothing was saved yet.
func (s *Store) LoadCycle() (cycle.State, error) {
	var st cycle.State

	err := s.db.QueryRow(`SELECT weekly_hours FROM cycle WHERE id = 1`).Scan(&st.WeeklyHours)
	if err == sql.ErrNoRows {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("load weekly hours: %w", err)
	}

	rows, err := s.db.Query(`SELECT day, hours FROM cycle_days ORDER BY position`)
	if err != nil {
		return st, fmt.Errorf("load days: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		var hours float64
		if err := rows.Scan(&key, &hours); err != nil {
			return st, err
		}
		day, err := cycle.ParseWeekday(key)
		if err != nil {
			return st, fmt.Errorf("load days: %w", err)
		}
		st.DailyHours[day] = hours
	}
	if err := rows.Err(); err != nil {
		return st, err
	}

	subjects, err := s.listSubjects()
	if err != nil {
		return st, err
	}
	st.Subjects = subjects
	return st, nil
}

func (s *Store) listSubjects() ([]cycle.Subject, error) {
	rows, err := s.db.Query(`SELECT id, name, percentage FROM subjects ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	var subjects []cycle.Subject
	for rows.Next() {
		var subj cycle.Subject
		if err := rows.Scan(&subj.ID, &subj.Name, &subj.Percentage); err != nil {
			return nil, err
		}
		subjects = append(subjects, subj)
	}
	return subjects, rows.Err()
}

func (s *Store) GetSnapshot(id int64) (*Snapshot, error) {
	snap := &Snapshot{}
	var savedAt, data string
	err := s.db.QueryRow(
		`SELECT id, saved_at, data FROM cycle_snapshots WHERE id = ?`, id,
	).Scan(&snap.ID, &savedAt, &data)
	if err != nil {
		return nil, fmt.Errorf("get snapshot %d: %w", id, err)
	}
	snap.SavedAt, _ = time.Parse(time.RFC3339, savedAt)
	snap.Data = []byte(data)
	return snap, nil
}

// ListSnapshots returns the newest snapshots first. A limit of 0 means all.
func (s *Store) ListSnapshots(limit int) ([]Snapshot, error) {
	query := `SELECT id, saved_at, data FROM cycle_snapshots ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		var savedAt, data string
		if err := rows.Scan(&snap.ID, &savedAt, &data); err != nil {
			return nil, err
		}
		snap.SavedAt, _ = time.Parse(time.RFC3339, savedAt)
		snap.Data = []byte(data)
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// State decodes the snapshot back into a cycle.
func (sn Snapshot) State() (cycle.State, error) {
	return cycle.Unmarshal(sn.Data)
}
