//go:build windows

package main

import "proctiller/internal/cli"

func main() {
	cli.Execute()
}
