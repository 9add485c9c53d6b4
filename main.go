package main

import "zendo/cmd"

func main() {
	cmd.Execute()
}
