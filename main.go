// Package main provides the perfval command-line interface, a statistical
// validation tool for performance claims. It compares baseline and
// optimized latency measurements and reports whether an improvement claim
// is statistically supported.
package main

import cmd "github.com/MorchestraWorld/perfval/cmd/perfval"

// main starts the perfval CLI application by delegating to the cobra root
// command defined in the perfval package.
func main() {
	cmd.Execute()
}
