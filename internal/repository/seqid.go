package repository

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// SeqIDWidth is the zero-padding width of generated identifiers.
const SeqIDWidth = 8

// NextSequentialID derives the next human-readable identifier for the
// given model: it reads the lexicographically maximal id sharing the
// prefix, parses the numeric suffix and increments it. With no matching
// rows it returns <prefix> followed by 1, zero-padded.
//
// Callers must run this inside the same database transaction as the
// insert and retry on a duplicate-key error, otherwise two concurrent
// callers can read the same last id.
func NextSequentialID(tx *gorm.DB, entity interface{}, prefix string, width int) (string, error) {
	var lastID string
	err := tx.Model(entity).
		Select("id").
		Where("id LIKE ?", prefix+"%").
		Order("id DESC").
		Limit(1).
		Scan(&lastID).Error
	if err != nil {
		return "", err
	}

	if lastID == "" {
		return fmt.Sprintf("%s%0*d", prefix, width, 1), nil
	}

	n, err := strconv.ParseUint(strings.TrimPrefix(lastID, prefix), 10, 64)
	if err != nil {
		return "", fmt.Errorf("malformed sequential id %q: %w", lastID, err)
	}

	return fmt.Sprintf("%s%0*d", prefix, width, n+1), nil
}
