// Copyright 2025 PracticePreach
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the stored domain types, composed by hand from the
// mus-go primitive serializers. Field order is part of the storage format;
// append new fields, never reorder.

var float32SliceMUS = ord.NewSliceSer[float32](raw.Float32)

type idMUS struct{}

// IDMUS serializes ID values as varint-encoded uint64.
var IDMUS = idMUS{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type chunkMUS struct{}

// ChunkMUS serializes Chunk values for storage.
var ChunkMUS = chunkMUS{}

func (chunkMUS) Marshal(c Chunk, bs []byte) (n int) {
	n = IDMUS.Marshal(c.Id, bs)
	n += ord.String.Marshal(string(c.Type), bs[n:])
	n += ord.String.Marshal(string(c.Party), bs[n:])
	n += varint.Int64.Marshal(c.Date, bs[n:])
	n += ord.String.Marshal(c.SourceID, bs[n:])
	n += varint.Int.Marshal(c.Seq, bs[n:])
	n += ord.String.Marshal(c.Content, bs[n:])
	n += float32SliceMUS.Marshal(c.Vector, bs[n:])
	n += varint.Int64.Marshal(c.InsertedAt.UTC().UnixMicro(), bs[n:])
	return n
}

func (chunkMUS) Unmarshal(bs []byte) (c Chunk, n int, err error) {
	var n1 int
	if c.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	var doctype, party string
	if doctype, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	c.Type = DocType(doctype)
	if party, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	c.Party = Party(party)
	if c.Date, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.SourceID, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Seq, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Content, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Vector, n1, err = float32SliceMUS.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	var micros int64
	if micros, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	c.InsertedAt = time.UnixMicro(micros).UTC()
	return c, n, nil
}

func (chunkMUS) Size(c Chunk) (size int) {
	size = IDMUS.Size(c.Id)
	size += ord.String.Size(string(c.Type))
	size += ord.String.Size(string(c.Party))
	size += varint.Int64.Size(c.Date)
	size += ord.String.Size(c.SourceID)
	size += varint.Int.Size(c.Seq)
	size += ord.String.Size(c.Content)
	size += float32SliceMUS.Size(c.Vector)
	size += varint.Int64.Size(c.InsertedAt.UTC().UnixMicro())
	return size
}

func (chunkMUS) Skip(bs []byte) (n int, err error) {
	if n, err = IDMUS.Skip(bs); err != nil {
		return
	}
	steps := []func([]byte) (int, error){
		ord.String.Skip,      // type
		ord.String.Skip,      // party
		varint.Int64.Skip,    // date
		ord.String.Skip,      // source id
		varint.Int.Skip,      // seq
		ord.String.Skip,      // content
		float32SliceMUS.Skip, // vector
		varint.Int64.Skip,    // inserted at
	}
	for _, skip := range steps {
		n1, err := skip(bs[n:])
		if err != nil {
			return n + n1, err
		}
		n += n1
	}
	return n, nil
}
