// Command protocompat compiles proto3 files into minimal Go code and
// generates legacy accessor adapters for it.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jptrs93/protocompat/internal/commands"
)

func main() {
	if err := commands.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
