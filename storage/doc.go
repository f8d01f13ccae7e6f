// Copyright 2025 Poiesic Systems
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


// Package storage provides the embedding-cache storage abstraction for
// clausemark.
//
// The package defines the VectorCache interface that decouples the matching
// engine from the cache implementation, plus the binary serialization of
// cached vectors. The BadgerDB implementation lives in the badger
// subpackage; an in-memory variant of the same implementation backs tests.
//
// # Constructor Return Type Pattern
//
// Public constructors return the VectorCache interface to prevent coupling
// to BadgerDB specifics:
//
//	cache, err := badger.OpenCache("/path/to/cache")  // returns storage.VectorCache
//
// # Thread Safety
//
// All VectorCache implementations must be thread-safe. Concurrent readers
// must only ever observe fully-written vectors; racing writers for the same
// key may duplicate computation upstream but must never produce a torn
// entry.
//
// # Context Support
//
// All cache methods accept context.Context. Pass context.Background() for
// operations without specific timeout requirements.
package storage
