package main

import "labelpr/internal/cmd"

func main() {
	cmd.Execute()
}
