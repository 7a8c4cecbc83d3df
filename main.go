package main

import "festeasy/cmd"

func main() {
	cmd.Execute()
}
