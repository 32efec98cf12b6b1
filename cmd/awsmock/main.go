// awsmock CLI - local AWS service mock server.
package main

import (
	"fmt"
	"os"

	"github.com/getmockd/awsmock/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cli.SetVersion(Version, Commit)
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
