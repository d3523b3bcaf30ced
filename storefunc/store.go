// Package storefunc is the persistent key-value store behind the key
// variable table and the saved policy/expression lists. Values are opaque
// serialized strings. Storage failures are logged and degrade to
// in-memory-only state; they are never surfaced past this boundary.
package storefunc

import (
	"log"
	"sort"
	"strings"

	"gopoltui/i18nfunc"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// KVRecord is one persisted key/value pair.
type KVRecord struct {
	ID    int64  `gorm:"primaryKey"`
	Key   string `gorm:"uniqueIndex;not null"`
	Value string
}

// Store reads and writes opaque string blobs. Every write goes through the
// in-memory map as well, so a database that fails mid-session still serves
// everything written since startup.
type Store struct {
	db  *gorm.DB
	mem map[string]string
}

// Open opens (or creates) the store at dbPath. If the database cannot be
// opened or migrated the store still works, in memory only.
func Open(dbPath string) *Store {
	s := &Store{mem: make(map[string]string)}
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
	db, err := gorm.Open(sqlite.Open(dbPath), gormConfig)
	if err != nil {
		log.Println(i18nfunc.T("error.store_open_failed", map[string]interface{}{"Name": dbPath}), err)
		return s
	}
	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		log.Println(i18nfunc.T("error.store_migrate_failed", nil), err)
		return s
	}
	s.db = db
	return s
}

// OpenInMemory returns a store with no database behind it.
func OpenInMemory() *Store {
	return &Store{mem: make(map[string]string)}
}

// Set writes a value. Database errors are logged, never returned.
func (s *Store) Set(key, value string) {
	s.mem[key] = value
	if s.db == nil {
		return
	}
	var rec KVRecord
	err := s.db.Where("key = ?", key).First(&rec).Error
	switch {
	case err == nil:
		rec.Value = value
		err = s.db.Save(&rec).Error
	case err == gorm.ErrRecordNotFound:
		err = s.db.Create(&KVRecord{Key: key, Value: value}).Error
	}
	if err != nil {
		log.Println(i18nfunc.T("error.store_write_failed", map[string]interface{}{"Name": key}), err)
	}
}

// Get reads a value. A read error degrades to the in-memory copy.
func (s *Store) Get(key string) (string, bool) {
	if s.db != nil {
		var rec KVRecord
		err := s.db.Where("key = ?", key).First(&rec).Error
		if err == nil {
			return rec.Value, true
		}
		if err != gorm.ErrRecordNotFound {
			log.Println(i18nfunc.T("error.store_read_failed", map[string]interface{}{"Name": key}), err)
		}
	}
	v, ok := s.mem[key]
	return v, ok
}

// Keys returns the sorted keys starting with prefix, merged from the
// database and the in-memory map.
func (s *Store) Keys(prefix string) []string {
	seen := make(map[string]struct{})
	if s.db != nil {
		var recs []KVRecord
		err := s.db.Where("key LIKE ?", prefix+"%").Find(&recs).Error
		if err != nil {
			log.Println(i18nfunc.T("error.store_read_failed", map[string]interface{}{"Name": prefix}), err)
		}
		for _, rec := range recs {
			seen[rec.Key] = struct{}{}
		}
	}
	for k := range s.mem {
		if strings.HasPrefix(k, prefix) {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Delete removes a key. Missing keys and database errors are not errors.
func (s *Store) Delete(key string) {
	delete(s.mem, key)
	if s.db == nil {
		return
	}
	if err := s.db.Where("key = ?", key).Delete(&KVRecord{}).Error; err != nil {
		log.Println(i18nfunc.T("error.store_write_failed", map[string]interface{}{"Name": key}), err)
	}
}

// Close closes the underlying database, if any.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
