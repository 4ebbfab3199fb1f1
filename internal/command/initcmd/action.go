package initcmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/render"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/templates"
)

func action(ctx context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadSettings(cmd)
	if err != nil {
		return err
	}
	printer, err := command.NewPrinter(cmd, cfg)
	if err != nil {
		return err
	}

	projectType := cmd.String("type")
	output := cmd.String("output")
	if output == "" {
		output = command.FileArg(cmd, 0, command.DefaultFile)
	}

	if cmd.Bool("interactive") {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("%w: --interactive requires a terminal", command.ErrUsage)
		}
		if projectType, output, err = prompt(ctx, projectType, output); err != nil {
			return err
		}
	}

	if projectType == "" {
		return fmt.Errorf("%w: --type is required for init command. Available types: %s",
			command.ErrUsage, strings.Join(templates.TypeNames(), ", "))
	}

	typ := templates.ProjectType(projectType)
	path, err := templates.Write(output, typ)
	if err != nil {
		return err
	}
	highlights, err := templates.Highlights(typ)
	if err != nil {
		return err
	}

	return printer.Init(render.InitResult{Type: projectType, Path: path, Highlights: highlights})
}

// prompt 交互选择项目类型与输出路径，已通过 flag 提供的值作为初始值。
func prompt(ctx context.Context, projectType, output string) (string, string, error) {
	options := make([]huh.Option[string], 0, len(templates.Types()))
	for _, name := range templates.TypeNames() {
		options = append(options, huh.NewOption(name, name))
	}
	if projectType == "" {
		projectType = string(templates.React)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project type").
				Options(options...).
				Value(&projectType),
			huh.NewInput().
				Title("Output path").
				Value(&output).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("path is required")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeBase16())

	if err := form.RunWithContext(ctx); err != nil {
		return "", "", fmt.Errorf("prompt: %w", err)
	}

	return projectType, strings.TrimSpace(output), nil
}
