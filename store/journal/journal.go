package journal

import (
	"context"
	"encoding/json"
	"time"

	"pegvault/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/jmoiron/sqlx/types"
)

// Record one committed engine event
type Record struct {
	ID        int64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	EventType string         `sql:"size:64;index:idx_journal_event_type" json:"event_type,omitempty"`
	Payload   types.JSONText `sql:"type:varchar(1024)" json:"payload,omitempty"`
	CreatedAt time.Time      `sql:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
}

type journalStore struct {
	db *db.DB
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(Record{})
		if err := tx.AutoMigrate(Record{}).Error; err != nil {
			return err
		}

		return nil
	})
}

// New new journal store persisting committed engine events in emission
// order
func New(db *db.DB) core.EventJournal {
	return &journalStore{db: db}
}

func (s *journalStore) Emit(ctx context.Context, events ...core.Event) error {
	return s.db.Tx(func(tx *db.DB) error {
		for _, event := range events {
			payload, err := json.Marshal(event)
			if err != nil {
				return err
			}

			record := &Record{
				EventType: event.EventType(),
				Payload:   types.JSONText(payload),
			}

			if err := tx.Update().Create(record).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *journalStore) Find(ctx context.Context, id int64) (*core.EventEntry, error) {
	var record Record
	if err := s.db.View().Where("id = ?", id).First(&record).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil
		}

		return nil, err
	}

	return &core.EventEntry{
		ID:        record.ID,
		EventType: record.EventType,
		Payload:   json.RawMessage(record.Payload),
		CreatedAt: record.CreatedAt,
	}, nil
}

// List returns the most recent records, newest first
func (s *journalStore) List(ctx context.Context, limit int) ([]*core.EventEntry, error) {
	var records []*Record
	if err := s.db.View().Order("id DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}

	entries := make([]*core.EventEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, &core.EventEntry{
			ID:        record.ID,
			EventType: record.EventType,
			Payload:   json.RawMessage(record.Payload),
			CreatedAt: record.CreatedAt,
		})
	}

	return entries, nil
}
