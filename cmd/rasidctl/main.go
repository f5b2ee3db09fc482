package main

import "github.com/aakb/rasid-api/internal/cli"

func main() {
	cli.Execute()
}
