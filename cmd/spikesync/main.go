// Command spikesync measures the synchronization of spike trains.
package main

import (
	"os"

	"github.com/katalvlaran/spikesync/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
