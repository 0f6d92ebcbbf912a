package settings

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/ledgerscope/explorer/internal/core/repository"
)

var (
	_ repository.Settings = (*Repository)(nil)
	_ repository.Settings = (*Memory)(nil)
)

type Setting struct {
	bun.BaseModel `bun:"table:settings"`

	Key       string    `bun:",pk,notnull"`
	Value     int       `bun:",notnull"`
	UpdatedAt time.Time `bun:",notnull"`
}

type Repository struct {
	pg *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{pg: db}
}

func CreateTables(ctx context.Context, pgDB *bun.DB) error {
	_, err := pgDB.NewCreateTable().
		Model(&Setting{}).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "settings pg create table")
	}
	return nil
}

func (r *Repository) GetPageSize(ctx context.Context, table string) (int, bool, error) {
	var s Setting

	err := r.pg.NewSelect().Model(&s).
		Where("key = ?", repository.SettingKey(table)).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "select setting")
	}

	return s.Value, true, nil
}

func (r *Repository) SetPageSize(ctx context.Context, table string, size int) error {
	s := &Setting{
		Key:       repository.SettingKey(table),
		Value:     size,
		UpdatedAt: time.Now(),
	}

	_, err := r.pg.NewInsert().Model(s).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "upsert setting")
	}

	return nil
}

// Memory keeps settings in process memory, used when no database is configured.
type Memory struct {
	m map[string]int
	sync.Mutex
}

func NewMemory() *Memory {
	return &Memory{m: map[string]int{}}
}

func (m *Memory) GetPageSize(_ context.Context, table string) (int, bool, error) {
	m.Lock()
	defer m.Unlock()

	v, ok := m.m[repository.SettingKey(table)]
	return v, ok, nil
}

func (m *Memory) SetPageSize(_ context.Context, table string, size int) error {
	m.Lock()
	defer m.Unlock()

	m.m[repository.SettingKey(table)] = size
	return nil
}
