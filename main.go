package main

import "res-builder/cmd"

func main() {
	cmd.Execute()
}
