package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/client"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/console"
)

func main() {
	_ = godotenv.Load()

	cfg, err := client.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".shiftctl_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "shifts> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化终端失败: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	c := console.New(client.New(cfg), rl, rl.Stdout(), cfg.Output)

	// 非交互调用：shiftctl workers list search=alice
	if len(os.Args) > 1 {
		if err := c.Execute(ctx, os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := c.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
