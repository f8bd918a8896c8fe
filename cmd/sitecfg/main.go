package main

import "github.com/npubuild/sitecfg/cmd/sitecfg/internal"

func main() {
	internal.Execute()
}
