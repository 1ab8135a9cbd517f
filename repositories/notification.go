//go:generate go run go.uber.org/mock/mockgen -source=notification.go -destination=../mocks/mock_notification_repository.go -package=mocks
package repositories

import (
	"chat-gate/domain"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const notificationPrefix = "notif:"

type INotificationRepository interface {
	StoreNotification(record NotificationRecord) error
	GetNotifications(limit int) ([]NotificationRecord, error)
}

type NotificationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewNotificationRepository(db *badger.DB, log *slog.Logger) NotificationRepository {
	return NotificationRepository{db: db, log: log}
}

// NotificationRecord is one delivery attempt as kept on disk.
type NotificationRecord struct {
	ID     uuid.UUID    `json:"id"`
	At     time.Time    `json:"at"`
	Phase  domain.Phase `json:"phase"`
	Action string       `json:"action"`
	Room   string       `json:"room"`
	Sender string       `json:"sender"`
	Body   string       `json:"body"`
	Color  string       `json:"color"`
	Status string       `json:"status"`
	Error  string       `json:"error,omitempty"`
}

func ToNotificationRecord(phase domain.Phase, action string, d domain.Delivery) NotificationRecord {
	record := NotificationRecord{
		ID:     uuid.New(),
		At:     d.At,
		Phase:  phase,
		Action: action,
		Room:   string(d.Room),
		Sender: d.Sender,
		Body:   d.Body,
		Color:  string(d.Color),
		Status: d.Status,
	}
	if d.Err != nil {
		record.Error = d.Err.Error()
	}
	return record
}

// StoreNotification persists a record under "notif:{timestamp_padded}:{uuid}".
// The 19-digit padding keeps keys in chronological order, the uuid separates
// records written in the same nanosecond.
func (r NotificationRepository) StoreNotification(record NotificationRecord) error {
	key := fmt.Sprintf("%s%019d:%s", notificationPrefix, record.At.UnixNano(), record.ID)
	bytes, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetNotifications returns at most limit records, newest first.
// A limit <= 0 returns everything.
func (r NotificationRepository) GetNotifications(limit int) ([]NotificationRecord, error) {
	var records []NotificationRecord
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(notificationPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration must start past the last possible key of the prefix.
		seekKey := append([]byte(notificationPrefix), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) >= limit {
				break
			}
			err := it.Item().Value(func(val []byte) error {
				var record NotificationRecord
				if err := json.Unmarshal(val, &record); err != nil {
					r.log.Warn("Skipping unreadable notification", "key", string(it.Item().Key()), "error", err)
					return nil
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return records, err
}
