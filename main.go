package main

import (
	"github.com/spotisync/spotisync/cmd"
)

func main() {
	cmd.Execute()
}
