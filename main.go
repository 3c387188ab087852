package main

import "github.com/Rorical/niveshak/cmd"

func main() {
	cmd.Execute()
}
