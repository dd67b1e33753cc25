package main

import "github.com/Onimuxha/font/internal/cli/cmd"

func main() {
	cmd.Execute()
}
