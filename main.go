// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/catwalk-dev/catwalk/cmd/catwalk"

func main() {
	cmd.Execute()
}
