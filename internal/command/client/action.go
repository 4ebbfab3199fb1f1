package client

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command/server"
	validatecmd "github.com/lwmacct/260120-go-tsconfig-helper/internal/command/validate"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/config"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/render"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/tsconfig"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/validate"
)

// setup 加载设置并创建客户端与输出器。
func setup(cmd *cli.Command) (*config.Config, *Client, *render.Printer, error) {
	cfg, err := command.LoadSettings(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	printer, err := command.NewPrinter(cmd, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, NewClient(cfg.Client), printer, nil
}

// readFile 读取本地文件，错误语义与 tsconfig.Load 一致。
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", tsconfig.ErrNotFound, path)
	}

	return data, err
}

func healthAction(ctx context.Context, cmd *cli.Command) error {
	cfg, c, _, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := c.Health(ctx); err != nil {
		return err
	}
	_, err = fmt.Fprintf(command.Stdout(cmd), "✅ %s is healthy\n", cfg.Client.URL)

	return err
}

func explainAction(ctx context.Context, cmd *cli.Command) error {
	_, c, printer, err := setup(cmd)
	if err != nil {
		return err
	}

	file := command.FileArg(cmd, 0, command.DefaultFile)
	content, err := readFile(file)
	if err != nil {
		return err
	}
	entries, err := c.Explain(ctx, file, content)
	if err != nil {
		return err
	}

	return printer.Explain(file, entries)
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	cfg, c, printer, err := setup(cmd)
	if err != nil {
		return err
	}
	threshold, err := validate.ParseSeverity(cfg.Validate.FailOn)
	if err != nil {
		return fmt.Errorf("%w: %w", command.ErrUsage, err)
	}

	file := command.FileArg(cmd, 0, command.DefaultFile)
	content, err := readFile(file)
	if err != nil {
		return err
	}
	report, err := c.Validate(ctx, file, content, cfg.Validate.Disable)
	if err != nil {
		return err
	}
	if err := printer.Validate(file, report); err != nil {
		return err
	}

	if report.Failed(threshold) {
		return fmt.Errorf("%w: %s has issues at or above %s", validatecmd.ErrFailed, file, threshold)
	}

	return nil
}

func diffAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("%w: diff requires two file paths", command.ErrUsage)
	}
	_, c, printer, err := setup(cmd)
	if err != nil {
		return err
	}

	fileA, fileB := cmd.Args().Get(0), cmd.Args().Get(1)
	a, err := readFile(fileA)
	if err != nil {
		return err
	}
	b, err := readFile(fileB)
	if err != nil {
		return err
	}

	result, err := c.Diff(ctx, server.DiffRequest{A: string(a), B: string(b), NameA: fileA, NameB: fileB})
	if err != nil {
		return err
	}

	return printer.Diff(fileA, fileB, result.Entries, cmd.Bool("hide-same"))
}

func templateAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("%w: template requires a project type", command.ErrUsage)
	}
	_, c, _, err := setup(cmd)
	if err != nil {
		return err
	}

	content, err := c.Template(ctx, cmd.Args().First())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(command.Stdout(cmd), "%s\n", content)

	return err
}
