package main

import (
	"fmt"

	"pegvault/cmd"
)

var (
	version string
	commit  string
)

func main() {
	cmd.Run(fmt.Sprintf("%s-%s", version, commit))
}
