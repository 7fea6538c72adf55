package main

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"github.com/libreim/enumerators/internal/commands"
	"github.com/libreim/enumerators/internal/config"
	"github.com/libreim/enumerators/pkg/blog"
)

func main() {
	ctx := context.Background()
	c, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load application config", logging.ErrField(err))
		os.Exit(cli.ExitCodeBadRequest)
	}
	cli.Main(ctx, commands.Mux(c.Logger(os.Stderr), blog.Default()))
}
