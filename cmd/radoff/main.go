// radoff radially offsets selected vertices of a Wavefront OBJ mesh.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/radial-offset/internal/logger"
)

func main() {
	defer logger.Sync()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
