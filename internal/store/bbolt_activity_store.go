package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketActivity = []byte("activity")

type BboltActivityStore struct {
	db        *bolt.DB
	retention int
	now       func() time.Time
}

// NewBboltActivityStore opens or creates the database at path. bbolt holds
// an exclusive lock, so a second instance fails after a short timeout.
func NewBboltActivityStore(path string) (*BboltActivityStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("activity db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := initBboltSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BboltActivityStore{db: db, retention: defaultActivityRetention, now: time.Now}, nil
}

func initBboltSchema(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketActivity)
		return err
	})
}

func (s *BboltActivityStore) Append(ctx context.Context, activity Activity) (Activity, error) {
	if err := ctx.Err(); err != nil {
		return Activity{}, err
	}
	activity, err := normalizeActivity(activity, s.now)
	if err != nil {
		return Activity{}, err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketActivity)
		if b == nil {
			return errors.New("activity bucket missing")
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		activity.ID = seq
		data, err := json.Marshal(activity)
		if err != nil {
			return err
		}
		if err := b.Put(activityKey(seq), data); err != nil {
			return err
		}
		return pruneActivity(b, s.retention)
	})
	if err != nil {
		return Activity{}, err
	}
	return activity, nil
}

func (s *BboltActivityStore) Recent(ctx context.Context, limit int) ([]Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Activity, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketActivity)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(out) >= limit {
				break
			}
			var activity Activity
			if err := json.Unmarshal(v, &activity); err != nil {
				return err
			}
			out = append(out, activity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BboltActivityStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// pruneActivity drops the oldest entries beyond retention. Keys are
// big-endian sequence numbers so cursor order is insertion order.
func pruneActivity(b *bolt.Bucket, retention int) error {
	if retention <= 0 {
		return nil
	}
	c := b.Cursor()
	count := 0
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		count++
	}
	over := count - retention
	for k, _ := c.First(); k != nil && over > 0; k, _ = c.First() {
		if err := c.Delete(); err != nil {
			return err
		}
		over--
	}
	return nil
}

func activityKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
