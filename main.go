package main

import "tataru/cmd"

func main() {
	cmd.Execute()
}
