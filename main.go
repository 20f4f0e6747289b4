package main

import "bloom/cmd"

func main() {
	cmd.Execute()
}
