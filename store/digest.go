package store

import (
	"encoding/hex"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/fivecolor/core"
)

// Digest identifies a graph by its vertex and edge sets, independent of
// vertex insertion order and neighbor order.
type Digest uint64

// String renders d as 16 hex digits.
func (d Digest) String() string {
	var b [8]byte
	for i := range b {
		b[7-i] = byte(d >> (8 * i))
	}
	return hex.EncodeToString(b[:])
}

// ParseDigest is the inverse of Digest.String.
func ParseDigest(s string) (Digest, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	return Digest(v), err
}

// DigestOf hashes the canonical form of g: vertices sorted, each followed by
// its sorted neighbor list.
//
// Complexity: O(V log V + E log E).
func DigestOf(g *core.Graph) Digest {
	adj := g.AdjacencyList()
	ids := make([]string, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	h := xxhash.New()
	for _, id := range ids {
		nbrs := adj[id]
		sort.Strings(nbrs)
		_, _ = h.WriteString(id)
		_, _ = h.WriteString(":")
		for _, n := range nbrs {
			_, _ = h.WriteString(n)
			_, _ = h.WriteString(",")
		}
		_, _ = h.WriteString("\n")
	}
	return Digest(h.Sum64())
}
