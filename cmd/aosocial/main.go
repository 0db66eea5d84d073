package main

import (
	"context"
	"fmt"
	"os"

	"AOSocial/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "aosocial:", err)
		os.Exit(1)
	}
}
