// Command splitpane inspects, adjusts and persists split-pane layouts.
package main

import "splitpane/cmd/splitpane/cmd"

func main() {
	cmd.Execute()
}
