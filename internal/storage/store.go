package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/diegoclair/group-meeting-rotation/internal/config"
	"github.com/diegoclair/group-meeting-rotation/internal/domain"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/entity"
	"github.com/diegoclair/group-meeting-rotation/pkg/retry"
)

// DocumentStore maps the roster and the schedule onto two backend documents.
type DocumentStore struct {
	backend Backend
	policy  retry.Policy
}

func NewDocumentStore(backend Backend, policy retry.Policy) *DocumentStore {
	return &DocumentStore{backend: backend, policy: policy}
}

// New picks the backend from configuration: KV REST, then Postgres, then
// SQLite, then plain files under DataDir.
func New(ctx context.Context, cfg *config.Config) (*DocumentStore, error) {
	policy := retry.Policy{
		Attempts: cfg.OutboundRetries,
		Delay:    cfg.OutboundRetryDelay,
		Timeout:  cfg.OutboundTimeout,
	}

	backend, err := newBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	slog.Info("storage_selected", "backend", backend.Name())
	return NewDocumentStore(backend, policy), nil
}

func newBackend(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch {
	case cfg.KVConfigured():
		return NewKVBackend(cfg.KVURL, cfg.KVToken, &http.Client{Timeout: cfg.OutboundTimeout}), nil
	case cfg.DatabaseURL != "":
		return NewPostgresBackend(ctx, cfg.DatabaseURL)
	case cfg.DatabasePath != "":
		return NewSQLiteBackend(cfg.DatabasePath)
	default:
		return NewFileBackend(cfg.DataDir)
	}
}

func (s *DocumentStore) Backend() string {
	return s.backend.Name()
}

func (s *DocumentStore) LoadMembers(ctx context.Context) ([]entity.Member, error) {
	var members []entity.Member
	found, err := s.load(ctx, domain.MembersKey, &members)
	if err != nil || !found {
		return nil, err
	}
	return members, nil
}

func (s *DocumentStore) SaveMembers(ctx context.Context, members []entity.Member) error {
	if members == nil {
		members = []entity.Member{}
	}
	return s.save(ctx, domain.MembersKey, members)
}

func (s *DocumentStore) LoadSchedule(ctx context.Context) ([]entity.Meeting, error) {
	var schedule []entity.Meeting
	found, err := s.load(ctx, domain.ScheduleKey, &schedule)
	if err != nil || !found {
		return nil, err
	}
	return schedule, nil
}

func (s *DocumentStore) SaveSchedule(ctx context.Context, schedule []entity.Meeting) error {
	if schedule == nil {
		schedule = []entity.Meeting{}
	}
	return s.save(ctx, domain.ScheduleKey, schedule)
}

func (s *DocumentStore) Close() error {
	return s.backend.Close()
}

func (s *DocumentStore) load(ctx context.Context, key string, dst any) (bool, error) {
	var data []byte
	err := retry.Do(ctx, s.policy, func(ctx context.Context) error {
		var err error
		data, err = s.backend.Get(ctx, key)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *DocumentStore) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	err = retry.Do(ctx, s.policy, func(ctx context.Context) error {
		return s.backend.Put(ctx, key, data)
	})
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
