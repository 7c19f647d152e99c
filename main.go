package main

import "github.com/mcpbridge/mcpbridge/cmd"

func main() {
	cmd.Execute()
}
