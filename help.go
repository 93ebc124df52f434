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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const promptHelpMarkdown = `# Commands

| command | what it does |
|---|---|
| ` + "`g <title> <content> [-m mood] [-p parent-id]`" + ` | add to the general tree |
| ` + "`b <key> <title> <content> [-m mood]`" + ` | add to the binary tree |
| ` + "`in` / `pre` / `post`" + ` | binary tree traversals |
| ` + "`dfs` / `render`" + ` | print the general / binary tree |
| ` + "`seed`" + ` | load the example entries |
| ` + "`fake <n>`" + ` | generate n entries per tree |
| ` + "`copy <id-prefix>`" + ` | copy an entry id to the clipboard |
| ` + "`reset`" + ` | start over with empty trees |
| ` + "`quit`" + ` | leave |

Quote titles and content that contain spaces: ` + "`g \"Day one\" \"It rained.\" -m Calm`" + `

Without ` + "`-p`" + ` a general entry hangs from the root. Binary keys are
numbers and must be unique; in-order always lists them sorted.
`

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Tree Journal %s**

A journal kept in two trees: replies thread under their parent in a general
tree, and keyed entries are filed in a binary search tree.

Built with Go %s

# 1. Features
* General (N-ary) tree with depth-first rendering
* Binary search tree with in-order, pre-order and post-order traversals
* Indented card views of both trees in the terminal
* Sample data and fake entry generation

%s
# Please be aware
* Nothing is saved: closing the session discards both trees
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), promptHelpMarkdown)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
