package main

import "github.com/pagemend/pagemend/cmd/pagemend/cmd"

func main() {
	cmd.Execute()
}
