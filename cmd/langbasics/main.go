// Package main - точка входа консольной программы langbasics.
//
// Без аргументов программа выполняет все демонстрации по порядку:
// пространства имён, функции, циклы, карточка сотрудника.
// Подкоманды запускают одну демонстрацию.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cmd, err := newRootCmd()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
