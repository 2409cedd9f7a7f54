package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sokinpui/vimv"
)

func main() {
	if err := vimv.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
