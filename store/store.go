// Package store wraps an embedded bitcask database used to persist
// node seeds and cached prompt results between host runs.
package store

import (
	"strconv"
	"time"

	"git.mills.io/prologic/bitcask"

	"outfitforge/logger"
)

type Store struct {
	db *bitcask.Bitcask
}

// Open opens (or creates) the database at path. Values larger than the
// bitcask default are allowed so cached metadata blobs fit.
func Open(path string) (*Store, error) {
	db, err := bitcask.Open(path, bitcask.WithMaxValueSize(10*1024*1024))
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// StartMergeLoop merges the database on the given interval to reclaim
// space. Runs until the process exits.
func (s *Store) StartMergeLoop(interval time.Duration) {
	go func() {
		for {
			time.Sleep(interval)
			s.Merge()
		}
	}()
}

func (s *Store) Merge() {
	logger.Info("Merging database to reclaim space...")
	if err := s.db.Merge(); err != nil {
		logger.Error("Error merging database", "error", err)
		return
	}
	logger.Info("Database merge complete.")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) PutString(key string, value string) error {
	compressedValue, err := compress([]byte(value))
	if err != nil {
		return err
	}
	return s.db.Put(CacheKey(key), compressedValue)
}

func (s *Store) PutUint32(key string, value uint32) error {
	return s.PutString(key, strconv.FormatUint(uint64(value), 10))
}

func (s *Store) PutBytes(key string, value []byte) error {
	compressedValue, err := compress(value)
	if err != nil {
		return err
	}
	return s.db.Put(CacheKey(key), compressedValue)
}

func (s *Store) PutBytesExpireHours(key string, value []byte, expire int) error {
	compressedValue, err := compress(value)
	if err != nil {
		return err
	}
	return s.db.PutWithTTL(CacheKey(key), compressedValue, time.Hour*time.Duration(expire))
}

func (s *Store) Get(key string) ([]byte, error) {
	compressedValue, err := s.db.Get(CacheKey(key))
	if err != nil {
		return nil, err
	}
	return decompress(compressedValue)
}

func (s *Store) GetUint32(key string) (uint32, bool) {
	raw, err := s.Get(key)
	if err != nil {
		return 0, false
	}
	v, err := strconv.ParseUint(string(raw), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

func (s *Store) Has(key string) bool {
	return s.db.Has(CacheKey(key))
}

func (s *Store) Delete(key string) error {
	return s.db.Delete(CacheKey(key))
}
