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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/pflag"
)

// CommandResult is what a prompt command hands back to the UI.
type CommandResult struct {
	Output   string
	Markdown bool
	Copy     string
	Quit     bool
}

var errEmptyCommand = errors.New("no command provided")

// splitCommand splits a prompt line into words using shell quoting rules.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	return args, nil
}

func newCommandFlags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Execute runs one prompt line against the session.
func (s *Session) Execute(line string) (CommandResult, error) {
	args, err := splitCommand(line)
	if err != nil {
		return CommandResult{}, s.fail(err)
	}
	if len(args) == 0 {
		return CommandResult{}, errEmptyCommand
	}

	name, rest := strings.ToLower(args[0]), args[1:]
	switch name {
	case "g", "general":
		return s.execGeneral(rest)
	case "b", "bst", "binary":
		return s.execBinary(rest)
	case "in", "inorder":
		return s.execTraverse(InOrder)
	case "pre", "preorder":
		return s.execTraverse(PreOrder)
	case "post", "postorder":
		return s.execTraverse(PostOrder)
	case "dfs":
		s.MarkRendered(true)
		return CommandResult{Output: PrintGeneral(s.General)}, nil
	case "render":
		s.MarkRendered(false)
		return CommandResult{Output: PrintBinary(s.Binary)}, nil
	case "seed":
		return CommandResult{}, s.Seed()
	case "fake":
		return s.execFake(rest)
	case "copy":
		return s.execCopy(rest)
	case "reset":
		s.Reset()
		return CommandResult{}, nil
	case "help", "?":
		return CommandResult{Output: promptHelpMarkdown, Markdown: true}, nil
	case "quit", "exit", "q":
		return CommandResult{Quit: true}, nil
	default:
		return CommandResult{}, s.fail(fmt.Errorf("unknown command %q, type `help`", name))
	}
}

// g <title> <content> [--mood m] [--parent id]
func (s *Session) execGeneral(args []string) (CommandResult, error) {
	fs := newCommandFlags("g")
	mood := fs.StringP("mood", "m", "", "mood of the entry")
	parent := fs.StringP("parent", "p", "", "id of the parent entry")
	if err := fs.Parse(args); err != nil {
		return CommandResult{}, s.fail(err)
	}
	if fs.NArg() != 2 {
		return CommandResult{}, s.fail(fmt.Errorf("usage: g <title> <content> [--mood m] [--parent id]"))
	}

	node, err := s.AddGeneral(fs.Arg(0), *mood, fs.Arg(1), *parent)
	if err != nil {
		return CommandResult{}, err
	}
	return CommandResult{Output: "added " + node.Entry.EntryID}, nil
}

// b <key> <title> <content> [--mood m]
func (s *Session) execBinary(args []string) (CommandResult, error) {
	fs := newCommandFlags("b")
	mood := fs.StringP("mood", "m", "", "mood of the entry")
	// negative keys look like flags to pflag, so take the key before parsing
	if len(args) == 0 {
		return CommandResult{}, s.fail(fmt.Errorf("usage: b <key> <title> <content> [--mood m]"))
	}
	key := args[0]
	if err := fs.Parse(args[1:]); err != nil {
		return CommandResult{}, s.fail(err)
	}
	if fs.NArg() != 2 {
		return CommandResult{}, s.fail(fmt.Errorf("usage: b <key> <title> <content> [--mood m]"))
	}

	node, err := s.AddBinary(key, fs.Arg(0), *mood, fs.Arg(1))
	if err != nil {
		return CommandResult{}, err
	}
	return CommandResult{Output: fmt.Sprintf("added key %s (%s)", formatKey(node.Key), node.Entry.EntryID)}, nil
}

func (s *Session) execTraverse(order TraversalOrder) (CommandResult, error) {
	report, err := s.Traverse(order)
	if err != nil {
		return CommandResult{}, err
	}
	return CommandResult{Output: report.String()}, nil
}

func (s *Session) execFake(args []string) (CommandResult, error) {
	if len(args) != 1 {
		return CommandResult{}, s.fail(fmt.Errorf("usage: fake <count>"))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return CommandResult{}, s.fail(fmt.Errorf("invalid count %q: %v", args[0], err))
	}
	if err := s.FillRandom(n, nil); err != nil {
		return CommandResult{}, err
	}
	return CommandResult{Output: fmt.Sprintf("general: %d nodes, binary: %d nodes", s.General.Size(), s.Binary.Size())}, nil
}

// copy <id-prefix> finds the first entry, in either tree, whose id starts
// with the prefix.
func (s *Session) execCopy(args []string) (CommandResult, error) {
	if len(args) != 1 || args[0] == "" {
		return CommandResult{}, s.fail(fmt.Errorf("usage: copy <id-prefix>"))
	}
	prefix := args[0]

	for _, v := range s.General.DFS() {
		if strings.HasPrefix(v.Node.Entry.EntryID, prefix) {
			return s.copied(v.Node.Entry.EntryID), nil
		}
	}
	for _, n := range s.Binary.PreOrder() {
		if strings.HasPrefix(n.Entry.EntryID, prefix) {
			return s.copied(n.Entry.EntryID), nil
		}
	}
	return CommandResult{}, s.fail(fmt.Errorf("no entry id starts with %q", prefix))
}

func (s *Session) copied(id string) CommandResult {
	s.Notify(ToastSuccess, "Copied "+id)
	return CommandResult{Output: id, Copy: id}
}
