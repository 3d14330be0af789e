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

import "errors"

// Domain validation errors
var (
	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidDocType indicates a document type outside {manifesto, speech}.
	ErrInvalidDocType = errors.New("invalid document type")

	// ErrUnknownParty indicates a party label outside the canonical vocabulary.
	ErrUnknownParty = errors.New("unknown party")

	// ErrInvalidDate indicates a date string that cannot be normalized to YYYYMMDD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrEmptyContent indicates the text content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrNoPeriod indicates a calendar date not covered by the legislative
	// period table. This is a configuration error, not a data condition.
	ErrNoPeriod = errors.New("date not covered by any legislative period")

	// ErrPeriodTable indicates the legislative period table itself is broken
	// (gaps or overlaps). Fatal at startup.
	ErrPeriodTable = errors.New("legislative period table is not contiguous")

	// ErrInvalidLabel indicates an alignment label outside the allowed set.
	ErrInvalidLabel = errors.New("invalid alignment label")
)
