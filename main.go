package main

import "github.com/dotcommander/ccfscore/cmd"

func main() {
	cmd.Execute()
}
