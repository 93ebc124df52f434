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

package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cybrota/treejournal/trees"
	"github.com/patrickmn/go-cache"
)

const opLogLimit = 200

// OpLogLine is one line of the operations log.
type OpLogLine struct {
	Message string
	Stamp   string
}

type TraversalOrder string

const (
	InOrder   TraversalOrder = "in"
	PreOrder  TraversalOrder = "pre"
	PostOrder TraversalOrder = "post"
)

var traversalLabels = map[TraversalOrder]string{
	InOrder:   "IN-ORDER (left, node, right)",
	PreOrder:  "PRE-ORDER (node, left, right)",
	PostOrder: "POST-ORDER (left, right, node)",
}

var traversalToasts = map[TraversalOrder]string{
	InOrder:   "In-order ready.",
	PreOrder:  "Pre-order ready.",
	PostOrder: "Post-order ready.",
}

// TraversalReport is the key listing printed for a traversal.
type TraversalReport struct {
	Label string
	Keys  []float64
}

func (r TraversalReport) String() string {
	keys := make([]string, len(r.Keys))
	for i, k := range r.Keys {
		keys[i] = formatKey(k)
	}
	return fmt.Sprintf("%s\nkeys: [%s]\ncount: %d", r.Label, strings.Join(keys, ", "), len(r.Keys))
}

// Session is everything one user works with: a tree of each kind, the
// operations log and the status toast.
type Session struct {
	config  *Config
	ids     *IDIssuer
	builder *EntryBuilder
	toasts  *cache.Cache
	log     []OpLogLine

	General *trees.GeneralTree[Entry]
	Binary  *trees.BinarySearchTree[Entry]
}

func NewSession(config *Config) *Session {
	ids := NewIDIssuer()
	return &Session{
		config:  config,
		ids:     ids,
		builder: NewEntryBuilder(ids, config),
		toasts:  NewToastCache(config.ToastDuration()),
		General: trees.NewGeneralTree[Entry](),
		Binary:  trees.NewBinarySearchTree[Entry](),
	}
}

func (s *Session) Config() *Config { return s.config }

func (s *Session) logOp(format string, args ...any) {
	s.log = append(s.log, OpLogLine{
		Message: fmt.Sprintf(format, args...),
		Stamp:   NowStamp(s.config.Journal.TimestampFormat),
	})
	if len(s.log) > opLogLimit {
		s.log = s.log[len(s.log)-opLogLimit:]
	}
}

// Log returns the operations log, newest first.
func (s *Session) Log() []OpLogLine {
	out := make([]OpLogLine, len(s.log))
	for i, line := range s.log {
		out[len(s.log)-1-i] = line
	}
	return out
}

func (s *Session) Notify(kind ToastKind, message string) {
	ShowToast(s.toasts, kind, message)
}

func (s *Session) Toast() (Toast, bool) {
	return CurrentToast(s.toasts)
}

func (s *Session) fail(err error) error {
	s.Notify(ToastError, err.Error())
	return err
}

// AddGeneral builds an entry and files it in the general tree, under
// parentID when one is given.
func (s *Session) AddGeneral(title, mood, content, parentID string) (*trees.GeneralNode[Entry], error) {
	entry, err := s.builder.BuildEntry("g", title, mood, content)
	if err != nil {
		return nil, s.fail(err)
	}

	parentID = strings.TrimSpace(parentID)
	node, err := s.General.Insert(entry, parentID)
	if err != nil {
		return nil, s.fail(err)
	}

	where := "at root/child of root"
	if parentID != "" {
		where = "as child of " + parentID
	}
	s.logOp("GeneralTree.insert(): added %q (id=%s) %s.", entry.Title, entry.EntryID, where)
	s.Notify(ToastSuccess, "Inserted into general tree.")
	return node, nil
}

// AddBinary builds an entry and files it in the binary tree under the key
// typed by the user. A blank or unparsable key is rejected by the tree as
// not finite.
func (s *Session) AddBinary(keyText, title, mood, content string) (*trees.BinaryNode[Entry], error) {
	entry, err := s.builder.BuildEntry("b", title, mood, content)
	if err != nil {
		return nil, s.fail(err)
	}

	key := parseKey(keyText)
	node, err := s.Binary.Insert(key, entry)
	if err != nil {
		return nil, s.fail(err)
	}

	s.logOp("BST.insert(): added %q with key=%s.", entry.Title, formatKey(key))
	s.Notify(ToastSuccess, "Inserted into binary tree.")
	return node, nil
}

// Traverse runs one of the three classic traversals over the binary tree.
func (s *Session) Traverse(order TraversalOrder) (TraversalReport, error) {
	var nodes []*trees.BinaryNode[Entry]
	switch order {
	case InOrder:
		nodes = s.Binary.InOrder()
		s.logOp("BST.inOrder(): in-order traversal (sorted keys for a BST).")
	case PreOrder:
		nodes = s.Binary.PreOrder()
		s.logOp("BST.preOrder(): pre-order traversal.")
	case PostOrder:
		nodes = s.Binary.PostOrder()
		s.logOp("BST.postOrder(): post-order traversal.")
	default:
		return TraversalReport{}, s.fail(fmt.Errorf("unknown traversal %q", order))
	}

	report := TraversalReport{Label: traversalLabels[order], Keys: make([]float64, len(nodes))}
	for i, n := range nodes {
		report.Keys[i] = n.Key
	}
	s.Notify(ToastSuccess, traversalToasts[order])
	return report, nil
}

// MarkRendered records that a tree view was redrawn on request.
func (s *Session) MarkRendered(general bool) {
	if general {
		s.logOp("GeneralTree.dfs(): walked the general tree (DFS) and rendered it.")
		s.Notify(ToastSuccess, "DFS rendered.")
		return
	}
	s.logOp("BST.asIndented(): rendered the binary tree (indented view).")
	s.Notify(ToastSuccess, "Tree rendered.")
}

// Seed loads the sample threads and keys 50, 25, 75, 10, 60. Seeding twice
// hangs a second thread under the root and stops at the first duplicate key.
func (s *Session) Seed() error {
	root, err := s.AddGeneral("Root: the journal begins", "Calm", "Today I start my journal as a general tree.", "")
	if err != nil {
		return err
	}
	reply, err := s.AddGeneral("Reply 1", "Curious", "What if every entry had replies?", root.Entry.ID())
	if err != nil {
		return err
	}
	if _, err := s.AddGeneral("Reply to Reply 1", "Inspired", "That is a child of a child!", reply.Entry.ID()); err != nil {
		return err
	}
	if _, err := s.AddGeneral("Reply 2", "Happy", "Another parallel thread, another child of the root.", root.Entry.ID()); err != nil {
		return err
	}

	seeds := []struct {
		key, mood, content string
	}{
		{"50", "Calm", "Root node of the BST."},
		{"25", "Curious", "Goes to the left of 50."},
		{"75", "Happy", "Goes to the right of 50."},
		{"10", "Tired", "Goes deeper on the left."},
		{"60", "Inspired", "Left of 75 (because 60 < 75)."},
	}
	for _, seed := range seeds {
		if _, err := s.AddBinary(seed.key, "Key "+seed.key, seed.mood, seed.content); err != nil {
			return err
		}
	}

	s.logOp("Seed: loaded the examples into the general and binary trees.")
	s.Notify(ToastSuccess, "Examples loaded.")
	return nil
}

// Reset throws both trees away and starts over with empty ones.
func (s *Session) Reset() {
	s.General = trees.NewGeneralTree[Entry]()
	s.Binary = trees.NewBinarySearchTree[Entry]()
	s.logOp("Reset: both trees were discarded.")
	s.Notify(ToastWarn, "Trees reset.")
}

func parseKey(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return math.NaN()
	}
	key, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// ParseFloat reports overflow as ±Inf with an error; keep that
		// and treat everything else as not a number.
		if math.IsInf(key, 0) {
			return key
		}
		return math.NaN()
	}
	return key
}

func formatKey(key float64) string {
	return strconv.FormatFloat(key, 'f', -1, 64)
}
