// Command strut is the layout inspector CLI: it loads a YAML tree
// description, runs the layout engine against a viewport, and prints the
// calculated geometry.
package main

import "github.com/go-strut/strut/cmd/strut/cmd"

func main() {
	cmd.Execute()
}
