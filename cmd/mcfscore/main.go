// SPDX-License-Identifier: MIT

// Command mcfscore scores and validates logistics flow solutions.
package main

import "github.com/mcfscore/mcfscore/cmd/mcfscore/commands"

func main() {
	commands.Execute()
}
