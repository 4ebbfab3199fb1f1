package diff

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/diff"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/tsconfig"
)

// ErrDifferent 表示启用 --exit-code 时两份配置存在差异。
var ErrDifferent = errors.New("configs differ")

func action(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("%w: diff requires two file paths. Usage: %s diff <file-a> <file-b>", command.ErrUsage, command.AppName)
	}
	fileA, fileB := cmd.Args().Get(0), cmd.Args().Get(1)

	cfg, err := command.LoadSettings(cmd)
	if err != nil {
		return err
	}
	printer, err := command.NewPrinter(cmd, cfg)
	if err != nil {
		return err
	}

	a, err := tsconfig.Load(fileA)
	if err != nil {
		return err
	}
	b, err := tsconfig.Load(fileB)
	if err != nil {
		return err
	}

	entries := diff.Compare(a, b)
	if cmd.Bool("unified") && !printer.Structured() {
		text, err := diff.Unified(fileA, a, fileB, b)
		if err != nil {
			return err
		}
		if err := printer.Unified(text); err != nil {
			return err
		}
	} else if err := printer.Diff(fileA, fileB, entries, cmd.Bool("hide-same")); err != nil {
		return err
	}

	if cmd.Bool("exit-code") && !diff.Summarize(entries).Identical() {
		return ErrDifferent
	}

	return nil
}
