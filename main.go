package main

import "github.com/flttx/medi-manage-platform-sub000/cmd"

func main() {
	cmd.Execute()
}
