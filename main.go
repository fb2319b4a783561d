package main

import "llmctx/cmd"

func main() {
	cmd.Execute()
}
