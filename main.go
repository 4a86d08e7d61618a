package main

import "resumemash/cmd"

func main() {
	cmd.Execute()
}
