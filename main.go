package main

import "f1champsseason/pkg/cmd"

func main() {
	cmd.Execute()
}
