// Command inputflow validates, plays, and inspects input scripts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/randalmurphal/inputflow/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	stop()
	os.Exit(cli.GetExitCode(err))
}
