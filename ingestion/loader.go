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


package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/practicepreach/preach/core"
)

// requiredColumns lists the columns a corpus source must carry.
var requiredColumns = []string{"type", "date", "id", "party", "text"}

// LoadCSV reads a corpus source file and returns the documents it holds.
// Malformed records (unparseable date, unknown party, missing text) are
// skipped and logged; they never abort the load.
func LoadCSV(path string) ([]*core.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadDocuments(f)
}

// ReadDocuments parses corpus records from r. The first row must be a
// header naming the columns type, date, id, party and text, in any order.
func ReadDocuments(r io.Reader) ([]*core.Document, error) {
	logger := slog.Default().With("component", "corpus-loader")

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var (
		documents []*core.Document
		skipped   int
	)
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("skipping unreadable row", "row", row, "err", err)
			skipped++
			continue
		}

		doc, err := documentFromRecord(record, columns)
		if err != nil {
			logger.Warn("skipping malformed record", "row", row, "err", err)
			skipped++
			continue
		}
		documents = append(documents, doc)
	}

	logger.Info("corpus source loaded", "documents", len(documents), "skipped", skipped)
	return documents, nil
}

// documentFromRecord maps one CSV row onto a validated document.
func documentFromRecord(record []string, columns map[string]int) (*core.Document, error) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	docType, err := core.ParseDocType(field("type"))
	if err != nil {
		return nil, err
	}

	date, err := core.ConvertDate(field("date"))
	if err != nil {
		return nil, err
	}

	party, err := core.ParseParty(field("party"))
	if err != nil {
		return nil, err
	}

	doc := &core.Document{
		Type:     docType,
		Party:    party,
		Date:     date,
		SourceID: field("id"),
		Text:     field("text"),
	}
	if err := core.ValidateDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
