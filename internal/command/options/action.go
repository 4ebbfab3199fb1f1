package options

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/optiondb"
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

	name := cmd.Args().First()
	if name == "" {
		return printer.OptionList(db, cmd.String("category"))
	}

	opt, ok := db.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", optiondb.ErrUnknownOption, name)
	}

	return printer.Option(name, opt)
}
