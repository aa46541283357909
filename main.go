package main

import "github.com/andrewpaige1/flashnotes/cmd"

func main() {
	cmd.Execute()
}
