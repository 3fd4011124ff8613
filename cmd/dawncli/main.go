package main

import (
	"github.com/Ed1196/Dawn-REST-API/internal/cli"
)

func main() {
	cli.Execute()
}
