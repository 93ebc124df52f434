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
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/treejournal/trees"
	"github.com/xlab/treeprint"
)

// CardStyles holds the styles for the tree views.
type CardStyles struct {
	Card    lipgloss.Style
	Title   lipgloss.Style
	Meta    lipgloss.Style
	Mood    lipgloss.Style
	Body    lipgloss.Style
	Badge   lipgloss.Style
	KeyPill lipgloss.Style
	Empty   lipgloss.Style
}

func NewCardStyles(scheme *ColorScheme) *CardStyles {
	return &CardStyles{
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Bold(true),
		Meta: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		Mood: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		Body: lipgloss.NewStyle().
			Foreground(scheme.Text),
		Badge: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Background(scheme.Badge).
			Padding(0, 1),
		KeyPill: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		Empty: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Italic(true),
	}
}

// indentFor caps the visual indent so deep trees stay on screen.
func indentFor(depth, maxDepth, width int) int {
	return min(depth, maxDepth) * width
}

func (cs *CardStyles) header(entry Entry) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		cs.Title.Render(entry.Title),
		cs.Meta.Render(entry.CreatedAt+" · ")+cs.Mood.Render(entry.Mood),
	)
}

// RenderGeneral draws one card per node of the general tree in DFS order.
func RenderGeneral(tree *trees.GeneralTree[Entry], config *Config, styles *CardStyles, width int) string {
	visits := tree.DFS()
	if len(visits) == 0 {
		return styles.Empty.Render("The general tree is empty. Add an entry or run `seed`.")
	}

	cards := make([]string, 0, len(visits))
	for _, v := range visits {
		entry := v.Node.Entry
		pad := indentFor(v.Depth, config.Render.GeneralMaxDepth, config.Render.IndentWidth)

		body := lipgloss.JoinVertical(lipgloss.Left,
			styles.header(entry),
			styles.Meta.Render("ID "+entry.EntryID),
			styles.Body.Render(entry.Content),
			styles.Badge.Render(fmt.Sprintf("depth: %d", v.Depth))+" "+
				styles.Badge.Render(fmt.Sprintf("children: %d", len(v.Node.Children))),
		)
		cards = append(cards, styles.Card.
			Width(max(width-pad-2, 10)).
			MarginLeft(pad).
			Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// RenderBinary draws one card per node of the binary tree, preorder, with
// the side each node hangs from.
func RenderBinary(tree *trees.BinarySearchTree[Entry], config *Config, styles *CardStyles, width int) string {
	items := tree.AsIndented()
	if len(items) == 0 {
		return styles.Empty.Render("The binary tree is empty. Add an entry with a key or run `seed`.")
	}

	cards := make([]string, 0, len(items))
	for _, item := range items {
		node := item.Node
		pad := indentFor(item.Depth, config.Render.BinaryMaxDepth, config.Render.IndentWidth)

		body := lipgloss.JoinVertical(lipgloss.Left,
			styles.header(node.Entry),
			styles.KeyPill.Render("key: "+formatKey(node.Key))+" "+
				styles.Badge.Render(string(item.Side))+" "+
				styles.Badge.Render(fmt.Sprintf("depth %d", item.Depth)),
			styles.Body.Render(node.Entry.Content),
			styles.Badge.Render("left: "+childKey(node.Left))+" "+
				styles.Badge.Render("right: "+childKey(node.Right)),
		)
		cards = append(cards, styles.Card.
			Width(max(width-pad-2, 10)).
			MarginLeft(pad).
			Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func childKey(node *trees.BinaryNode[Entry]) string {
	if node == nil {
		return "null"
	}
	return formatKey(node.Key)
}

// PrintGeneral renders the general tree as an ASCII tree. Branches are
// kept per depth while walking the DFS list, so no recursion is needed.
func PrintGeneral(tree *trees.GeneralTree[Entry]) string {
	visits := tree.DFS()
	if len(visits) == 0 {
		return "(empty)\n"
	}

	root := treeprint.NewWithRoot(generalLabel(visits[0].Node.Entry))
	branches := []treeprint.Tree{root}
	for _, v := range visits[1:] {
		branches = branches[:v.Depth]
		branches = append(branches, branches[v.Depth-1].AddBranch(generalLabel(v.Node.Entry)))
	}
	return root.String()
}

func generalLabel(entry Entry) string {
	if entry.Mood == "" {
		return fmt.Sprintf("%s (%s)", entry.Title, entry.EntryID)
	}
	return fmt.Sprintf("%s [%s] (%s)", entry.Title, entry.Mood, entry.EntryID)
}

// PrintBinary renders the binary tree as an ASCII tree, marking each child
// L or R.
func PrintBinary(tree *trees.BinarySearchTree[Entry]) string {
	items := tree.AsIndented()
	if len(items) == 0 {
		return "(empty)\n"
	}

	root := treeprint.NewWithRoot(binaryLabel(items[0]))
	branches := []treeprint.Tree{root}
	for _, item := range items[1:] {
		branches = branches[:item.Depth]
		branches = append(branches, branches[item.Depth-1].AddBranch(binaryLabel(item)))
	}
	return root.String()
}

func binaryLabel(item trees.IndentedVisit[Entry]) string {
	label := formatKey(item.Node.Key) + " · " + item.Node.Entry.Title
	if item.Side == trees.SideRoot {
		return label
	}
	return fmt.Sprintf("[%s] %s", item.Side, label)
}

// RenderLog lists the operations log, newest first.
func RenderLog(lines []OpLogLine, styles *CardStyles, limit int) string {
	if len(lines) == 0 {
		return styles.Empty.Render("No operations yet.")
	}
	if limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.Body.Render(line.Message))
		b.WriteString(" ")
		b.WriteString(styles.Meta.Render(line.Stamp))
	}
	return b.String()
}
