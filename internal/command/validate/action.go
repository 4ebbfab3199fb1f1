package validate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/render"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/tsconfig"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/validate"
)

// ErrFailed 表示报告中存在达到失败级别的问题。
var ErrFailed = errors.New("validation failed")

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadSettings(cmd)
	if err != nil {
		return err
	}
	printer, err := command.NewPrinter(cmd, cfg)
	if err != nil {
		return err
	}

	threshold, err := validate.ParseSeverity(cfg.Validate.FailOn)
	if err != nil {
		return fmt.Errorf("%w: %w", command.ErrUsage, err)
	}
	if unknown := validate.CheckRuleIDs(cfg.Validate.Disable); len(unknown) > 0 {
		return fmt.Errorf("%w: unknown rule(s) %s. Available: %s",
			command.ErrUsage, strings.Join(unknown, ", "), strings.Join(validate.RuleIDs(), ", "))
	}

	if cmd.Bool("list-rules") {
		rules := validate.Rules()
		infos := make([]render.RuleInfo, len(rules))
		for i, r := range rules {
			infos[i] = render.RuleInfo{
				ID:          r.ID,
				Description: r.Description,
				Disabled:    slices.Contains(cfg.Validate.Disable, r.ID),
			}
		}
		return printer.Rules(infos)
	}

	file := command.FileArg(cmd, 0, command.DefaultFile)
	ts, err := tsconfig.Load(file)
	if err != nil {
		return err
	}

	report := validate.Validate(ts, validate.WithDisabled(cfg.Validate.Disable...))
	slog.Debug("Validated config", "file", file, "issues", len(report.Issues), "valid", report.Valid)
	if err := printer.Validate(file, report); err != nil {
		return err
	}

	if report.Failed(threshold) {
		return fmt.Errorf("%w: %s has issues at or above %s", ErrFailed, file, threshold)
	}

	return nil
}
