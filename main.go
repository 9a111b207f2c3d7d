package main

import "github.com/ptgen/ptgen/cmd"

func main() {
	cmd.Execute()
}
