// Command codexr is the AR/VR coding assistant CLI.
package main

import (
	"github.com/custodia-labs/codexr-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
