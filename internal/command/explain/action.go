package explain

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/explain"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/tsconfig"
)

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadSettings(cmd)
	if err != nil {
		return err
	}
	printer, err := command.NewPrinter(cmd, cfg)
	if err != nil {
		return err
	}
	db, err := command.OptionDB(cfg)
	if err != nil {
		return err
	}

	file := command.FileArg(cmd, 0, command.DefaultFile)
	ts, err := tsconfig.Load(file)
	if err != nil {
		return err
	}

	entries := explain.Explain(ts, db)
	if n := explain.Unknown(entries); n > 0 {
		slog.Debug("Unknown compiler options", "file", file, "count", n)
	}

	return printer.Explain(file, entries)
}
