// Package summary contains financial aggregate use cases.
package summary

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// SnapshotCacheKey derives a stable cache key from the transaction list. Two
// lists with the same (id, updatedAt) pairs produce the same key regardless
// of order, so any edit, insert or delete changes the key. The input slice is
// never modified.
func SnapshotCacheKey(transactions []*entity.Transaction) string {
	pairs := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		pairs = append(pairs, tx.ID.String()+":"+strconv.FormatInt(tx.UpdatedAt.UnixNano(), 10))
	}
	sort.Strings(pairs)

	h := sha256.New()
	for _, pair := range pairs {
		h.Write([]byte(pair))
		h.Write([]byte{'\n'})
	}
	return "snapshot:" + hex.EncodeToString(h.Sum(nil))
}
