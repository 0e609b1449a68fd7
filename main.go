package main

import "github.com/nounish/govscope/cmd"

func main() {
	cmd.Execute()
}
