// Package seed derives generator seeds from times, labels and session ids.
package seed

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash"
	"github.com/google/uuid"
)

// FromTime returns the millisecond timestamp used for default seeding.
func FromTime(t time.Time) int64 {
	return t.UnixMilli()
}

// FromLabel hashes a human readable stream name.
func FromLabel(label string) int64 {
	return int64(xxhash.Sum64([]byte(label)))
}

// FromUUID folds the two halves of id together.
func FromUUID(id uuid.UUID) int64 {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])
	return int64(hi ^ lo)
}

// Parse reads s as a decimal integer, then as a UUID, and otherwise
// treats it as a label. Integers outside int64 are rejected.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return n, nil
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, s)
	}
	if id, err := uuid.Parse(s); err == nil {
		return FromUUID(id), nil
	}
	return FromLabel(s), nil
}

// Derive returns the seed of sub-stream n of base. Neighbouring n give
// unrelated seeds.
func Derive(base int64, n int) int64 {
	x := uint64(base) ^ (uint64(n)+1)*0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return int64(x ^ (x >> 31))
}
