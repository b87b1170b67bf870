package main

import "github.com/bryanrm/duplix-duplicate-file-handler/cmd"

func main() {
	cmd.Execute()
}
