package main

import (
	cmd "github.com/kerbaras/gallery/cmd/gallery"
)

func main() {
	cmd.Execute()
}
