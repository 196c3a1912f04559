// Package docstore implements the storage contract on top of Redis, keeping
// each entity as a flat JSON document. The store has no joins and no native
// integer autoincrement: poster names are denormalized onto item documents
// at write time, and numeric ids are derived from the generated document
// key. Lookups by non-key fields load the collection and filter on equality.
package docstore

import (
	"math"
	"strconv"
	"time"

	"campusfind/lostfound-api/store"

	"github.com/cespare/xxhash/v2"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	itemDocPrefix = "lostfound:items:"
	itemIndexKey  = "lostfound:items"

	userDocPrefix = "lostfound:users:"
	userIndexKey  = "lostfound:users"

	// Date layout used inside documents, kept human-readable for the
	// Firebase-style console view.
	docTimeLayout = "2006-01-02 15:04:05"
)

func newDocKey() (string, error) {
	return gonanoid.New(20)
}

// numericID derives a stable positive int64 from a document key. Collisions
// are theoretically possible and not handled, matching the derived-id scheme
// this store was built around.
func numericID(key string) int64 {
	return int64(xxhash.Sum64String(key) & math.MaxInt64)
}

func idField(id int64) string {
	return strconv.FormatInt(id, 10)
}

func wrap(op string, err error) error {
	return store.NewStorageError(op, store.KindUnavailable, err)
}

func formatDocTime(t time.Time) string {
	return t.UTC().Format(docTimeLayout)
}

func parseDocTime(s string) time.Time {
	t, err := time.Parse(docTimeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
