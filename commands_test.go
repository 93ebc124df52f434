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
	"strings"
	"testing"

	"github.com/cybrota/treejournal/trees"
)

// TestSplitCommand verifies that splitCommand correctly tokenizes a prompt line.
func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"in", []string{"in"}},
		{`g "Day one" "It rained all day" -m Calm`, []string{"g", "Day one", "It rained all day", "-m", "Calm"}},
		{`b 42 'Key 42' "answer"`, []string{"b", "42", "Key 42", "answer"}},
		{`g Title "multi word content" --parent g_abc`, []string{"g", "Title", "multi word content", "--parent", "g_abc"}},
	}

	for _, tc := range tests {
		parts, err := splitCommand(tc.input)
		if err != nil {
			t.Errorf("splitCommand(%q) returned error: %v", tc.input, err)
			continue
		}
		if len(parts) != len(tc.expected) {
			t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
			continue
		}
		for i := range parts {
			if parts[i] != tc.expected[i] {
				t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
				break
			}
		}
	}

	if _, err := splitCommand(`g "unterminated`); err == nil {
		t.Errorf("splitCommand with an open quote should fail")
	}
}

func TestExecuteGeneralThread(t *testing.T) {
	s := newTestSession(t)

	if _, err := s.Execute(`g "Root" "first entry" -m Calm`); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	rootID := s.General.Root().Entry.ID()

	res, err := s.Execute(`g "Reply" "second entry" --parent ` + rootID)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.HasPrefix(res.Output, "added g_") {
		t.Errorf("Output = %q", res.Output)
	}

	children := s.General.Root().Children
	if len(children) != 1 || children[0].Entry.Title != "Reply" {
		t.Fatalf("reply not attached under root: %+v", children)
	}
	if s.General.Root().Entry.Mood != "Calm" {
		t.Errorf("Mood = %q; want Calm", s.General.Root().Entry.Mood)
	}

	if _, err := s.Execute(`g "Lost" "no parent" -p g_missing`); !errors.Is(err, trees.ErrNotFound) {
		t.Errorf("Execute with unknown parent error = %v; want ErrNotFound", err)
	}
}

func TestExecuteBinaryAndTraversals(t *testing.T) {
	s := newTestSession(t)
	for _, line := range []string{
		`b 50 "Key 50" "root"`,
		`b 25 "Key 25" "left"`,
		`b 75 "Key 75" "right" -m Happy`,
		`b -5 "Key -5" "negative"`,
	} {
		if _, err := s.Execute(line); err != nil {
			t.Fatalf("Execute(%q) returned error: %v", line, err)
		}
	}

	tests := []struct {
		line string
		keys string
	}{
		{"in", "keys: [-5, 25, 50, 75]"},
		{"pre", "keys: [50, 25, -5, 75]"},
		{"post", "keys: [-5, 25, 75, 50]"},
	}
	for _, tc := range tests {
		res, err := s.Execute(tc.line)
		if err != nil {
			t.Fatalf("Execute(%q) returned error: %v", tc.line, err)
		}
		if !strings.Contains(res.Output, tc.keys) || !strings.HasSuffix(res.Output, "count: 4") {
			t.Errorf("Execute(%q) output = %q", tc.line, res.Output)
		}
	}

	if _, err := s.Execute(`b 25 "again" "dup"`); !errors.Is(err, trees.ErrDuplicateKey) {
		t.Errorf("duplicate key error = %v; want ErrDuplicateKey", err)
	}
	if _, err := s.Execute(`b abc "bad" "key"`); !errors.Is(err, trees.ErrInvalidArgument) {
		t.Errorf("bad key error = %v; want ErrInvalidArgument", err)
	}
}

func TestExecuteMisc(t *testing.T) {
	s := newTestSession(t)

	if _, err := s.Execute("   "); !errors.Is(err, errEmptyCommand) {
		t.Errorf("blank line error = %v; want errEmptyCommand", err)
	}
	if _, err := s.Execute("frobnicate"); err == nil {
		t.Errorf("unknown command should fail")
	}
	if _, err := s.Execute(`g "only title"`); err == nil {
		t.Errorf("g without content should fail")
	}
	if _, err := s.Execute("b"); err == nil {
		t.Errorf("b without arguments should fail")
	}

	if _, err := s.Execute("seed"); err != nil {
		t.Fatalf("seed returned error: %v", err)
	}

	res, err := s.Execute("dfs")
	if err != nil {
		t.Fatalf("dfs returned error: %v", err)
	}
	if !strings.Contains(res.Output, "Reply to Reply 1") {
		t.Errorf("dfs output = %q", res.Output)
	}

	res, err = s.Execute("render")
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	if !strings.Contains(res.Output, "[R] 75 · Key 75") {
		t.Errorf("render output = %q", res.Output)
	}

	rootID := s.General.Root().Entry.ID()
	res, err = s.Execute("copy " + rootID[:6])
	if err != nil {
		t.Fatalf("copy returned error: %v", err)
	}
	if res.Copy == "" || !strings.HasPrefix(res.Copy, rootID[:6]) {
		t.Errorf("copy result = %+v", res)
	}
	if _, err := s.Execute("copy zz_nothing"); err == nil {
		t.Errorf("copy with no match should fail")
	}

	res, err = s.Execute("help")
	if err != nil || !res.Markdown {
		t.Errorf("help = %+v, %v; want markdown output", res, err)
	}

	if _, err := s.Execute("fake 3"); err != nil {
		t.Errorf("fake returned error: %v", err)
	}
	if _, err := s.Execute("fake many"); err == nil {
		t.Errorf("fake with a bad count should fail")
	}

	if _, err := s.Execute("reset"); err != nil {
		t.Errorf("reset returned error: %v", err)
	}
	if s.General.Size() != 0 {
		t.Errorf("general tree not reset")
	}

	res, err = s.Execute("quit")
	if err != nil || !res.Quit {
		t.Errorf("quit = %+v, %v", res, err)
	}
}
