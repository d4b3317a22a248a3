// Command coconctl is the command-line client for a Notre Cocon server.
package main

import (
	"os"

	"github.com/notrecocon/cocon/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
