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
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/cybrota/treejournal/trees"
)

func fixedClock() time.Time {
	return time.Date(2026, time.October, 17, 21, 30, 0, 0, time.UTC)
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	restore := Clock
	Clock = fixedClock
	t.Cleanup(func() { Clock = restore })
	return NewSession(DefaultConfig())
}

func TestSessionSeed(t *testing.T) {
	s := newTestSession(t)
	if err := s.Seed(); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}

	var titles []string
	var depths []int
	for _, v := range s.General.DFS() {
		titles = append(titles, v.Node.Entry.Title)
		depths = append(depths, v.Depth)
	}
	wantTitles := []string{"Root: the journal begins", "Reply 1", "Reply to Reply 1", "Reply 2"}
	if !reflect.DeepEqual(titles, wantTitles) {
		t.Errorf("DFS titles = %v; want %v", titles, wantTitles)
	}
	if !reflect.DeepEqual(depths, []int{0, 1, 2, 1}) {
		t.Errorf("DFS depths = %v; want [0 1 2 1]", depths)
	}

	tests := []struct {
		order TraversalOrder
		keys  []float64
	}{
		{InOrder, []float64{10, 25, 50, 60, 75}},
		{PreOrder, []float64{50, 25, 10, 75, 60}},
		{PostOrder, []float64{10, 25, 60, 75, 50}},
	}
	for _, tc := range tests {
		report, err := s.Traverse(tc.order)
		if err != nil {
			t.Fatalf("Traverse(%s) returned error: %v", tc.order, err)
		}
		if !reflect.DeepEqual(report.Keys, tc.keys) {
			t.Errorf("Traverse(%s) = %v; want %v", tc.order, report.Keys, tc.keys)
		}
	}

	toast, ok := s.Toast()
	if !ok || toast.Kind != ToastSuccess {
		t.Errorf("expected a success toast after traversals, got %+v (%v)", toast, ok)
	}
}

func TestSessionSeedTwiceStopsAtDuplicateKey(t *testing.T) {
	s := newTestSession(t)
	if err := s.Seed(); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}

	err := s.Seed()
	if !errors.Is(err, trees.ErrDuplicateKey) {
		t.Fatalf("second Seed error = %v; want ErrDuplicateKey", err)
	}
	if s.General.Size() != 8 {
		t.Errorf("General.Size() = %d; want 8", s.General.Size())
	}
	if s.Binary.Size() != 5 {
		t.Errorf("Binary.Size() = %d; want 5", s.Binary.Size())
	}
	toast, _ := s.Toast()
	if toast.Kind != ToastError {
		t.Errorf("expected an error toast, got %+v", toast)
	}
}

func TestSessionAddGeneralUnknownParent(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddGeneral("Root", "", "first", ""); err != nil {
		t.Fatalf("AddGeneral returned error: %v", err)
	}
	logged := len(s.Log())

	_, err := s.AddGeneral("Orphan", "", "lost", "missing-id")
	if !errors.Is(err, trees.ErrNotFound) {
		t.Fatalf("AddGeneral error = %v; want ErrNotFound", err)
	}
	if s.General.Size() != 1 {
		t.Errorf("General.Size() = %d; want 1", s.General.Size())
	}
	if len(s.Log()) != logged {
		t.Errorf("a failed insert should not be logged")
	}
}

func TestSessionAddBinaryKeys(t *testing.T) {
	tests := []struct {
		key     string
		wantErr error
	}{
		{"42", nil},
		{" 2.5 ", nil},
		{"-7", nil},
		{"", trees.ErrInvalidArgument},
		{"abc", trees.ErrInvalidArgument},
		{"NaN", trees.ErrInvalidArgument},
		{"Inf", trees.ErrInvalidArgument},
		{"1e999", trees.ErrInvalidArgument},
		{"42", trees.ErrDuplicateKey},
	}

	s := newTestSession(t)
	for _, tc := range tests {
		_, err := s.AddBinary(tc.key, "Title", "", "Content")
		if tc.wantErr == nil && err != nil {
			t.Errorf("AddBinary(%q) returned error: %v", tc.key, err)
		}
		if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
			t.Errorf("AddBinary(%q) error = %v; want %v", tc.key, err, tc.wantErr)
		}
	}

	report, _ := s.Traverse(InOrder)
	if got := report.String(); got != "IN-ORDER (left, node, right)\nkeys: [-7, 2.5, 42]\ncount: 3" {
		t.Errorf("report = %q", got)
	}
}

func TestSessionLogNewestFirst(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddGeneral("Root", "Calm", "first", ""); err != nil {
		t.Fatalf("AddGeneral returned error: %v", err)
	}
	if _, err := s.AddBinary("5", "Five", "", "body"); err != nil {
		t.Fatalf("AddBinary returned error: %v", err)
	}

	lines := s.Log()
	if len(lines) != 2 {
		t.Fatalf("len(Log()) = %d; want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0].Message, `BST.insert(): added "Five" with key=5`) {
		t.Errorf("newest line = %q", lines[0].Message)
	}
	if !strings.Contains(lines[1].Message, "at root/child of root") {
		t.Errorf("oldest line = %q", lines[1].Message)
	}
	if lines[0].Stamp != "17/10/2026 21:30" {
		t.Errorf("Stamp = %q", lines[0].Stamp)
	}
}

func TestSessionReset(t *testing.T) {
	s := newTestSession(t)
	if err := s.Seed(); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	s.Reset()

	if s.General.Size() != 0 || s.Binary.Size() != 0 {
		t.Errorf("sizes after Reset = %d, %d; want 0, 0", s.General.Size(), s.Binary.Size())
	}
	if err := s.Seed(); err != nil {
		t.Errorf("Seed after Reset returned error: %v", err)
	}
}

func TestSessionFillRandom(t *testing.T) {
	s := newTestSession(t)
	steps := 0
	if err := s.FillRandom(50, func() { steps++ }); err != nil {
		t.Fatalf("FillRandom returned error: %v", err)
	}

	if steps != 50 {
		t.Errorf("steps = %d; want 50", steps)
	}
	if s.General.Size() != 50 || s.Binary.Size() != 50 {
		t.Errorf("sizes = %d, %d; want 50, 50", s.General.Size(), s.Binary.Size())
	}
	if len(s.General.DFS()) != 50 {
		t.Errorf("DFS should reach every generated entry")
	}
	report, _ := s.Traverse(InOrder)
	for i := 1; i < len(report.Keys); i++ {
		if report.Keys[i-1] >= report.Keys[i] {
			t.Fatalf("in-order keys not strictly ascending at %d: %v", i, report.Keys)
		}
	}

	if err := s.FillRandom(0, nil); err == nil {
		t.Errorf("FillRandom(0) should fail")
	}
}

func TestParseKey(t *testing.T) {
	if got := parseKey("12.5"); got != 12.5 {
		t.Errorf("parseKey(12.5) = %v", got)
	}
	if got := parseKey(""); !math.IsNaN(got) {
		t.Errorf("parseKey(\"\") = %v; want NaN", got)
	}
	if got := parseKey("-1e999"); !math.IsInf(got, -1) {
		t.Errorf("parseKey(-1e999) = %v; want -Inf", got)
	}
	if got := formatKey(50); got != "50" {
		t.Errorf("formatKey(50) = %q", got)
	}
}
