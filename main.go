// Command casereach reports unreachable Case blocks in Select Case statements.
package main

import "github.com/mouse-blink/casereach/cmd"

func main() {
	cmd.Execute()
}
