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

import (
	"fmt"
	"math"
)

// BinaryNode is a node of the binary search tree.
type BinaryNode[T any] struct {
	Key   float64
	Entry T
	Left  *BinaryNode[T]
	Right *BinaryNode[T]
}

// Side tells which child of its parent a node is.
type Side string

const (
	SideRoot  Side = "root"
	SideLeft  Side = "L"
	SideRight Side = "R"
)

// IndentedVisit is one item of AsIndented.
type IndentedVisit[T any] struct {
	Node  *BinaryNode[T]
	Depth int
	Side  Side
}

// BinarySearchTree orders entries by a numeric key. Keys are unique and the
// tree is never rebalanced, so a sorted insertion sequence degrades it to a
// list.
type BinarySearchTree[T any] struct {
	root *BinaryNode[T]
	size int
}

func NewBinarySearchTree[T any]() *BinarySearchTree[T] {
	return &BinarySearchTree[T]{}
}

func (tree *BinarySearchTree[T]) Root() *BinaryNode[T] { return tree.root }

func (tree *BinarySearchTree[T]) Size() int { return tree.size }

// Insert places entry under key. Smaller keys go left, larger go right.
// A NaN or infinite key yields ErrInvalidArgument and a key already in the
// tree yields ErrDuplicateKey; in both cases the tree is left untouched.
func (tree *BinarySearchTree[T]) Insert(key float64, entry T) (*BinaryNode[T], error) {
	if math.IsNaN(key) || math.IsInf(key, 0) {
		return nil, fmt.Errorf("insert key %v: %w", key, ErrInvalidArgument)
	}

	node := &BinaryNode[T]{Key: key, Entry: entry}
	if tree.root == nil {
		tree.root = node
		tree.size++
		return node, nil
	}

	current := tree.root
	for {
		switch {
		case key == current.Key:
			return nil, fmt.Errorf("insert key %v: %w", key, ErrDuplicateKey)
		case key < current.Key:
			if current.Left == nil {
				current.Left = node
				tree.size++
				return node, nil
			}
			current = current.Left
		default:
			if current.Right == nil {
				current.Right = node
				tree.size++
				return node, nil
			}
			current = current.Right
		}
	}
}

// InOrder returns left, node, right. For a search tree that is ascending
// key order.
func (tree *BinarySearchTree[T]) InOrder() []*BinaryNode[T] {
	result := make([]*BinaryNode[T], 0, tree.size)
	var stack []*BinaryNode[T]
	current := tree.root

	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.Left
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, current)
		current = current.Right
	}
	return result
}

// PreOrder returns node, left, right.
func (tree *BinarySearchTree[T]) PreOrder() []*BinaryNode[T] {
	result := make([]*BinaryNode[T], 0, tree.size)
	if tree.root == nil {
		return result
	}

	stack := []*BinaryNode[T]{tree.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, node)

		if node.Right != nil {
			stack = append(stack, node.Right)
		}
		if node.Left != nil {
			stack = append(stack, node.Left)
		}
	}
	return result
}

type postOrderFrame[T any] struct {
	node    *BinaryNode[T]
	visited bool
}

// PostOrder returns left, right, node. A node is pushed back as visited
// and only emitted on its second pop, after both subtrees.
func (tree *BinarySearchTree[T]) PostOrder() []*BinaryNode[T] {
	result := make([]*BinaryNode[T], 0, tree.size)
	if tree.root == nil {
		return result
	}

	stack := []postOrderFrame[T]{{node: tree.root}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if frame.visited {
			result = append(result, frame.node)
			continue
		}

		stack = append(stack, postOrderFrame[T]{node: frame.node, visited: true})
		if frame.node.Right != nil {
			stack = append(stack, postOrderFrame[T]{node: frame.node.Right})
		}
		if frame.node.Left != nil {
			stack = append(stack, postOrderFrame[T]{node: frame.node.Left})
		}
	}
	return result
}

// AsIndented is a preorder walk for drawing the tree: each node comes with
// its depth and the side of its parent it hangs from.
func (tree *BinarySearchTree[T]) AsIndented() []IndentedVisit[T] {
	result := make([]IndentedVisit[T], 0, tree.size)
	if tree.root == nil {
		return result
	}

	stack := []IndentedVisit[T]{{Node: tree.root, Depth: 0, Side: SideRoot}}
	for len(stack) > 0 {
		visit := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, visit)

		if visit.Node.Right != nil {
			stack = append(stack, IndentedVisit[T]{Node: visit.Node.Right, Depth: visit.Depth + 1, Side: SideRight})
		}
		if visit.Node.Left != nil {
			stack = append(stack, IndentedVisit[T]{Node: visit.Node.Left, Depth: visit.Depth + 1, Side: SideLeft})
		}
	}
	return result
}
