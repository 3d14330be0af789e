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


// Package retrieval provides filtered semantic retrieval over the chunk
// store.
//
// The Retriever embeds a topic query and ranks stored chunks by cosine
// similarity within one (party, document type, date range) partition.
// The compound filter is mandatory: results from other parties or
// document types can never leak into a query's result set.
package retrieval
