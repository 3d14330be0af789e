package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/practicepreach/preach/core"
)

// Key prefixes for different data types
const (
	chunkRecordPrefix    = "chkrec"
	chunkPartitionPrefix = "chkidx"
)

// docTypeCode maps a document type to a single key byte.
func docTypeCode(t core.DocType) byte {
	if t == core.DocTypeManifesto {
		return 'm'
	}
	return 's'
}

// makeChunkKey generates a key for a chunk by ID.
func makeChunkKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", chunkRecordPrefix, id))
}

// makePartitionPrefix generates the index prefix covering one
// (type, party) partition. Party names never contain NUL, so a NUL
// byte terminates the party component unambiguously.
// Format: prefix:type:party\x00
func makePartitionPrefix(docType core.DocType, party core.Party) []byte {
	prefix := chunkPartitionPrefix + ":"
	partyBytes := []byte(party)
	buf := make([]byte, 0, len(prefix)+1+len(partyBytes)+1)
	buf = append(buf, prefix...)
	buf = append(buf, docTypeCode(docType))
	buf = append(buf, partyBytes...)
	buf = append(buf, 0x00)
	return buf
}

// makePartitionKey generates a composite index key for a chunk.
// Format: prefix:type:party\x00:date:id
func makePartitionKey(chunk *core.Chunk) []byte {
	partition := makePartitionPrefix(chunk.Type, chunk.Party)
	buf := make([]byte, len(partition)+16) // 8 bytes for date + 8 bytes for ID
	offset := copy(buf, partition)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(chunk.Date))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(chunk.Id))
	return buf
}

// makePartialPartitionKey generates a partial index key for date range
// queries within a (type, party) partition.
// Format: prefix:type:party\x00:date
func makePartialPartitionKey(docType core.DocType, party core.Party, date int64) []byte {
	partition := makePartitionPrefix(docType, party)
	buf := make([]byte, len(partition)+8) // 8 bytes for date
	offset := copy(buf, partition)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(date))
	return buf
}

// partitionKeyDate extracts the date component from a partition index key.
func partitionKeyDate(key []byte, partitionLen int) int64 {
	return int64(binary.BigEndian.Uint64(key[partitionLen:]))
}
