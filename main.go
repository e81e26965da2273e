package main

import "github.com/func/prompt/cmd"

func main() {
	cmd.Exec()
}
