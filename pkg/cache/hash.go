package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash returns the hex SHA-256 of data (64 characters). Map contents are
// hashed with it to identify a map, and FileCache names entry files by the
// hash of their key.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// mapPrefixLen is how much of a map hash appears in plain text in a key.
const mapPrefixLen = 12

// pathsKey builds "paths:<map>:<query>", where <map> is the start of mapHash
// and <query> hashes the endpoints and limit. Direction matters: (a → b) and
// (b → a) list different paths and get different keys.
func pathsKey(mapHash string, opts PathsKeyOpts) string {
	query := fmt.Sprintf("%d,%d>%d,%d/%d", opts.FromX, opts.FromY, opts.ToX, opts.ToY, opts.Limit)
	return fmt.Sprintf("paths:%s:%s", mapHash[:min(len(mapHash), mapPrefixLen)], Hash([]byte(mapHash+"|"+query)))
}
