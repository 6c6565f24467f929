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

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Keytree %s**

A sorted key set that never forgets. Every insert and delete produces a new
immutable version of the tree, so snapshots, undo and time-travel queries
are all a single reference away.

Built with Go %s

# 1. Features
* Logarithmic insert, delete and membership over millions of keys
* Inclusive range queries returning keys in ascending order
* Named snapshots and undo, both O(1) thanks to structural sharing
* Bulk loading from key files with progress and duplicate screening
* ASCII rendering of the tree structure for quick balance inspection
* Elegant Terminal UI for interactive exploration

# 2. Key files
One key per line. Blank lines and lines starting with '#' are ignored.

# 3. Commands
* keytree run [file]       - launch the interactive UI
* keytree load <file>      - bulk load and print stats
* keytree query <file>     - one-shot membership and range queries
* keytree show <file>      - render the tree structure
* keytree settings         - show or create the YAML configuration
* keytree usage            - this guide

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}

// tuiHelpMarkdown is rendered with glamour inside the TUI help pane.
const tuiHelpMarkdown = `
# Keytree UI

Type a command and press enter:

| Command            | Effect                                        |
|--------------------|-----------------------------------------------|
| add <key>...       | insert keys                                   |
| del <key>...       | delete keys                                   |
| has <key>          | membership test                               |
| range <from> <to>  | inclusive ascending range query               |
| snap <name>        | name the current version                      |
| restore <name>     | republish a named version                     |
| undo               | step back to the previous version             |
| clear              | clear the result pane                         |

Keys with spaces can be quoted, shell style: ` + "`add \"two words\"`" + `

## Keyboard

- **tab** — cycle focus between input and key list
- **f1** — toggle this help
- **ctrl+y** — copy the visible key listing to the clipboard
- **esc / ctrl+c** — quit
`
