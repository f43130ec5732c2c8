package main

import (
	"context"

	"github.com/faizmokh/vibe/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
