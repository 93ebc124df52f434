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

package trees

import "fmt"

// Identifiable is what the general tree needs from an entry: its identifier.
type Identifiable interface {
	ID() string
}

// GeneralNode is a node of the general tree. Children keep insertion order.
type GeneralNode[T Identifiable] struct {
	Entry    T
	Children []*GeneralNode[T]
}

func (n *GeneralNode[T]) addChild(child *GeneralNode[T]) {
	n.Children = append(n.Children, child)
}

// GeneralVisit is one item of a depth-first walk.
type GeneralVisit[T Identifiable] struct {
	Node  *GeneralNode[T]
	Depth int
}

// GeneralTree is an N-ary tree of entries. Looking a parent up by id is a
// linear walk; there is no index.
type GeneralTree[T Identifiable] struct {
	root *GeneralNode[T]
	size int
}

func NewGeneralTree[T Identifiable]() *GeneralTree[T] {
	return &GeneralTree[T]{}
}

func (tree *GeneralTree[T]) Root() *GeneralNode[T] { return tree.root }

// Size is the number of nodes inserted so far.
func (tree *GeneralTree[T]) Size() int { return tree.size }

// Insert adds entry to the tree.
//
// The first entry becomes the root and parentID is ignored. After that an
// empty parentID attaches the entry to the root; otherwise the entry is
// appended to the children of the node whose entry has that id, and
// ErrNotFound is returned (with nothing inserted) when there is none.
func (tree *GeneralTree[T]) Insert(entry T, parentID string) (*GeneralNode[T], error) {
	node := &GeneralNode[T]{Entry: entry}

	if tree.root == nil {
		tree.root = node
		tree.size++
		return node, nil
	}

	parent := tree.root
	if parentID != "" {
		parent = tree.FindByID(parentID)
		if parent == nil {
			return nil, fmt.Errorf("insert under %q: %w", parentID, ErrNotFound)
		}
	}

	parent.addChild(node)
	tree.size++
	return node, nil
}

// FindByID returns the first node, in preorder, whose entry has the given
// id, or nil.
func (tree *GeneralTree[T]) FindByID(id string) *GeneralNode[T] {
	if tree.root == nil {
		return nil
	}

	stack := []*GeneralNode[T]{tree.root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.Entry.ID() == id {
			return current
		}
		// Push in reverse so the first child is popped first
		for i := len(current.Children) - 1; i >= 0; i-- {
			stack = append(stack, current.Children[i])
		}
	}
	return nil
}

// DFS walks the whole tree in preorder and returns every node with its
// depth (the root is at depth 0).
func (tree *GeneralTree[T]) DFS() []GeneralVisit[T] {
	if tree.root == nil {
		return []GeneralVisit[T]{}
	}

	result := make([]GeneralVisit[T], 0, tree.size)
	stack := []GeneralVisit[T]{{Node: tree.root, Depth: 0}}
	for len(stack) > 0 {
		visit := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, visit)

		children := visit.Node.Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, GeneralVisit[T]{Node: children[i], Depth: visit.Depth + 1})
		}
	}
	return result
}
