package main

import "tagwriter/cli/cmd"

func main() {
	cmd.Execute()
}
