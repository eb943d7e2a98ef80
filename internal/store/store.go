// Package store persists application state as named slots: one row per
// slot, the whole collection serialized as a single JSON blob. A slot that
// is missing or fails to parse yields its compiled-in default instead of an
// error, so one corrupt slot never blocks the others from loading.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rankor24/BIM-AI-Crew/internal/domain"
)

// Slot names. One per top-level collection.
const (
	SlotUser         = "bim_user"
	SlotProjects     = "bim_projects"
	SlotTasks        = "bim_tasks"
	SlotMeetings     = "bim_meetings"
	SlotArticles     = "bim_articles"
	SlotIntegrations = "bim_integrations"
)

// Store owns the six persisted slots for the lifetime of the session.
type Store struct {
	db *sql.DB
}

// New creates a Store backed by the given database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load reads the named slot. If the slot is absent or its stored text does
// not parse as T, the default is returned with no error: corruption is
// recovered silently because the user cannot act on it. Errors from the
// database handle itself do surface.
func Load[T any](ctx context.Context, s *Store, name string, def T) (T, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE name = ?`, name).Scan(&raw)
	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("reading slot %s: %w", name, err)
	}

	var v T
	if jsonErr := json.Unmarshal([]byte(raw), &v); jsonErr != nil {
		return def, nil
	}
	return v, nil
}

// Save serializes v and upserts the named slot. Called at most once per
// mutation, synchronously, before the caller reflects the change.
func (s *Store) Save(ctx context.Context, name string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding slot %s: %w", name, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO slots (name, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		name, string(raw), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing slot %s: %w", name, err)
	}
	return nil
}

func (s *Store) User(ctx context.Context) (domain.UserProfile, error) {
	return Load(ctx, s, SlotUser, domain.DefaultUser())
}

func (s *Store) SaveUser(ctx context.Context, u domain.UserProfile) error {
	return s.Save(ctx, SlotUser, u)
}

func (s *Store) Projects(ctx context.Context) ([]domain.Project, error) {
	return Load(ctx, s, SlotProjects, []domain.Project{})
}

func (s *Store) SaveProjects(ctx context.Context, projects []domain.Project) error {
	return s.Save(ctx, SlotProjects, projects)
}

func (s *Store) Tasks(ctx context.Context) ([]domain.Task, error) {
	return Load(ctx, s, SlotTasks, []domain.Task{})
}

func (s *Store) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	return s.Save(ctx, SlotTasks, tasks)
}

func (s *Store) Meetings(ctx context.Context) ([]domain.Meeting, error) {
	return Load(ctx, s, SlotMeetings, []domain.Meeting{})
}

func (s *Store) SaveMeetings(ctx context.Context, meetings []domain.Meeting) error {
	return s.Save(ctx, SlotMeetings, meetings)
}

func (s *Store) Articles(ctx context.Context) ([]domain.KnowledgeArticle, error) {
	return Load(ctx, s, SlotArticles, []domain.KnowledgeArticle{})
}

func (s *Store) SaveArticles(ctx context.Context, articles []domain.KnowledgeArticle) error {
	return s.Save(ctx, SlotArticles, articles)
}

func (s *Store) Integrations(ctx context.Context) ([]domain.Integration, error) {
	return Load(ctx, s, SlotIntegrations, domain.DefaultIntegrations())
}

func (s *Store) SaveIntegrations(ctx context.Context, integrations []domain.Integration) error {
	return s.Save(ctx, SlotIntegrations, integrations)
}
