package main

import (
	"context"
	"fmt"
	"os"

	"github.com/wb-go/wbf/zlog"

	"github.com/kaymick2/timebot/internal/cli"
)

func main() {
	zlog.Init()

	cmd := cli.NewRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
