package main

import "github.com/mj1618/designer-cli/cmd"

func main() {
	cmd.Execute()
}
