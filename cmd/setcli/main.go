package main

import (
	"github.com/fyerfyer/set-kit/cmd/setcli/cmd"
)

func main() {
	cmd.Execute()
}
