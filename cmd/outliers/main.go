package main

import (
	"github.com/c9s/outliers/pkg/cmd"
)

func main() {
	cmd.Execute()
}
