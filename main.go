// SPDX-License-Identifier: MPL-2.0

// Command envspec applies a declarative development environment spec.
package main

import cmd "github.com/adriancmiranda/envspec/cmd/envspec"

func main() {
	cmd.Execute()
}
