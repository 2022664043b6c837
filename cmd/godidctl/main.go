// Command godidctl is the operator's CLI for encoding, decoding, and
// scheduling Open Drone ID broadcast messages, working entirely on
// local byte buffers and hex strings.
package main

import "github.com/openflightid/godid/cmd/godidctl/commands"

func main() {
	commands.Execute()
}
