package ptable

import (
	"fmt"

	"github.com/dekarrin/rezi"
)

// EncodeCache serialises t with rezi's binary format, the same mechanism the
// teacher's datastore uses to persist a *game.State: a direct reflection-based
// encoding of a plain struct of maps, slices and ints, with no schema file of
// its own. A host embedding Boreal can use this to avoid rebuilding the
// default table from its grammar text on every process start.
func EncodeCache(t *Table) []byte {
	return rezi.EncBinary(t)
}

// DecodeCache is the inverse of EncodeCache.
func DecodeCache(data []byte) (*Table, error) {
	t := &Table{}
	n, err := rezi.DecBinary(data, t)
	if err != nil {
		return nil, fmt.Errorf("ptable.DecodeCache: %w", err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("ptable.DecodeCache: decoded %d/%d bytes, trailing garbage", n, len(data))
	}
	return t, nil
}
