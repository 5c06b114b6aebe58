// Package seqid allocates the human-readable sequential identifiers used
// for volunteers (VOL-0001) and event invitations (EVT-0001).
package seqid

import (
	"fmt"

	"gorm.io/gorm"
)

// Counter holds one row per identifier prefix. Allocate's upsert takes a
// row lock that is held until the surrounding transaction commits, so
// concurrent allocations for the same prefix serialize instead of racing.
type Counter struct {
	Prefix string `gorm:"primaryKey;size:10"`
	Value  int64  `gorm:"not null"`
}

func (Counter) TableName() string {
	return "id_counters"
}

// Allocate reserves the next value for prefix and returns the formatted
// identifier. It must run inside the transaction that persists the record
// so an aborted insert rolls the counter back with it and the value can
// be reissued.
func Allocate(tx *gorm.DB, prefix string) (string, error) {
	var value int64
	err := tx.Raw(
		`INSERT INTO id_counters (prefix, value) VALUES (?, 1)
		 ON CONFLICT (prefix) DO UPDATE SET value = id_counters.value + 1
		 RETURNING value`, prefix).Scan(&value).Error
	if err != nil {
		return "", fmt.Errorf("failed to allocate %s id: %w", prefix, err)
	}
	return Format(prefix, value), nil
}

// Format zero-pads the numeric suffix to 4 digits; larger values keep
// their natural width.
func Format(prefix string, value int64) string {
	return fmt.Sprintf("%s%04d", prefix, value)
}
