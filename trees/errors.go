// Copyright 2025 Naren Yellavula
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

// Package trees holds the two journal trees: a general (N-ary) tree whose
// nodes are found by entry identifier, and an unbalanced binary search tree
// keyed by number. Both are plain values owned by the caller and are not
// safe for concurrent use.
package trees

import "errors"

var (
	// ErrNotFound is returned when a parent identifier matches no node.
	ErrNotFound = errors.New("no node with that parent id exists")

	// ErrInvalidArgument is returned for a key that is NaN or infinite.
	ErrInvalidArgument = errors.New("key must be a finite number")

	// ErrDuplicateKey is returned when the key is already in the tree.
	ErrDuplicateKey = errors.New("duplicate key: use a unique key for the binary tree")
)
