package main

import "github.com/example/adisyon/cmd"

func main() {
	cmd.Execute()
}
