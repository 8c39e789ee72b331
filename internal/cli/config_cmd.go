package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/paramz/internal/config"
	"github.com/aidanlsb/paramz/internal/ui"
)

type configContext struct {
	cfg          *config.Config
	configPath   string
	configExists bool
}

var (
	configSetAppName     string
	configSetHeader      string
	configSetFooter      string
	configSetMarkdown    bool
	configSetLogLevel    string
	configSetLogFormat   string
	configSetUIAccent    string
	configSetUICodeTheme string

	configUnsetHeader      bool
	configUnsetFooter      bool
	configUnsetMarkdown    bool
	configUnsetUIAccent    bool
	configUnsetUICodeTheme bool
)

func loadConfigContextAllowMissing() (*configContext, error) {
	loadedCfg, resolvedPath, exists, err := config.LoadAllowMissing(configPath)
	if err != nil {
		return nil, err
	}
	return &configContext{
		cfg:          loadedCfg,
		configPath:   resolvedPath,
		configExists: exists,
	}, nil
}

func configData(ctx *configContext) map[string]interface{} {
	return map[string]interface{}{
		"config_path": ctx.configPath,
		"exists":      ctx.configExists,
		"app": map[string]interface{}{
			"name":     strings.TrimSpace(ctx.cfg.App.Name),
			"header":   ctx.cfg.App.Header,
			"footer":   ctx.cfg.App.Footer,
			"markdown": ctx.cfg.App.Markdown,
		},
		"log": map[string]interface{}{
			"level":  strings.TrimSpace(ctx.cfg.Log.Level),
			"format": strings.TrimSpace(ctx.cfg.Log.Format),
		},
		"ui": map[string]interface{}{
			"accent":     strings.TrimSpace(ctx.cfg.UI.Accent),
			"code_theme": strings.TrimSpace(ctx.cfg.UI.CodeTheme),
		},
	}
}

func normalizeLogLevel(raw string) (string, bool) {
	level := strings.ToLower(strings.TrimSpace(raw))
	switch level {
	case "debug", "info", "warn", "error":
		return level, true
	default:
		return "", false
	}
}

func normalizeLogFormat(raw string) (string, bool) {
	format := strings.ToLower(strings.TrimSpace(raw))
	switch format {
	case "text", "json":
		return format, true
	default:
		return "", false
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ctx, err := loadConfigContextAllowMissing()
	if err != nil {
		return handleError(out, ErrConfigInvalid, err, "")
	}

	if isJSONOutput() {
		outputSuccess(out, configData(ctx))
		return nil
	}

	if !ctx.configExists {
		fmt.Fprintf(out, "Config file does not exist: %s\n", ctx.configPath)
		fmt.Fprintln(out, ui.Hint("Run 'paramz config init' to create it."))
		return nil
	}

	fmt.Fprintf(out, "config: %s\n", ctx.configPath)
	table := ui.NewTable(2)
	table.AddRow("app.name", strings.TrimSpace(ctx.cfg.App.Name))
	if v := strings.TrimSpace(ctx.cfg.App.Header); v != "" {
		table.AddRow("app.header", v)
	}
	if v := strings.TrimSpace(ctx.cfg.App.Footer); v != "" {
		table.AddRow("app.footer", v)
	}
	table.AddRow("app.markdown", fmt.Sprintf("%t", ctx.cfg.App.Markdown))
	table.AddRow("log.level", ctx.cfg.Log.Level)
	table.AddRow("log.format", ctx.cfg.Log.Format)
	if v := strings.TrimSpace(ctx.cfg.UI.Accent); v != "" {
		table.AddRow("ui.accent", v)
	}
	if v := strings.TrimSpace(ctx.cfg.UI.CodeTheme); v != "" {
		table.AddRow("ui.code_theme", v)
	}
	fmt.Fprint(out, table.String())
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the paramz config file",
	Long: `Manage the paramz config file.

The config file names the application shown in generated help, the help
header and footer, logging, and UI theming.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		targetPath := config.ResolveConfigPath(configPath)

		createdPath, created, err := config.CreateDefaultAt(targetPath)
		if err != nil {
			return handleError(out, ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(out, map[string]interface{}{
				"config_path": createdPath,
				"created":     created,
			})
			return nil
		}

		if created {
			fmt.Fprintln(out, ui.Successf("Created config: %s", createdPath))
		} else {
			fmt.Fprintf(out, "Config already exists: %s\n", createdPath)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path := config.ResolveConfigPath(configPath)
		if isJSONOutput() {
			_, statErr := os.Stat(path)
			outputSuccess(out, map[string]interface{}{
				"config_path": path,
				"exists":      statErr == nil,
			})
			return nil
		}
		fmt.Fprintln(out, path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set one or more config fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		ctx, err := loadConfigContextAllowMissing()
		if err != nil {
			return handleError(out, ErrConfigInvalid, err, "")
		}

		changed := make([]string, 0, 8)
		flags := cmd.Flags()

		if flags.Changed("app-name") {
			value := strings.TrimSpace(configSetAppName)
			if value == "" {
				return handleErrorMsg(out, ErrInvalidInput, "app-name cannot be empty", "Help pages need an application name")
			}
			ctx.cfg.App.Name = value
			changed = append(changed, "app.name")
		}
		if flags.Changed("header") {
			ctx.cfg.App.Header = configSetHeader
			changed = append(changed, "app.header")
		}
		if flags.Changed("footer") {
			ctx.cfg.App.Footer = configSetFooter
			changed = append(changed, "app.footer")
		}
		if flags.Changed("markdown") {
			ctx.cfg.App.Markdown = configSetMarkdown
			changed = append(changed, "app.markdown")
		}
		if flags.Changed("log-level") {
			value, ok := normalizeLogLevel(configSetLogLevel)
			if !ok {
				return handleErrorMsg(out, ErrInvalidInput, "log-level must be one of: debug, info, warn, error", "")
			}
			ctx.cfg.Log.Level = value
			changed = append(changed, "log.level")
		}
		if flags.Changed("log-format") {
			value, ok := normalizeLogFormat(configSetLogFormat)
			if !ok {
				return handleErrorMsg(out, ErrInvalidInput, "log-format must be one of: text, json", "")
			}
			ctx.cfg.Log.Format = value
			changed = append(changed, "log.format")
		}
		if flags.Changed("ui-accent") {
			value := strings.TrimSpace(configSetUIAccent)
			if value == "" {
				return handleErrorMsg(out, ErrInvalidInput, "ui-accent cannot be empty; use 'paramz config unset --ui-accent' to clear it", "")
			}
			ctx.cfg.UI.Accent = value
			changed = append(changed, "ui.accent")
		}
		if flags.Changed("ui-code-theme") {
			value := strings.TrimSpace(configSetUICodeTheme)
			if value == "" {
				return handleErrorMsg(out, ErrInvalidInput, "ui-code-theme cannot be empty; use 'paramz config unset --ui-code-theme' to clear it", "")
			}
			ctx.cfg.UI.CodeTheme = value
			changed = append(changed, "ui.code_theme")
		}

		if len(changed) == 0 {
			return handleErrorMsg(out, ErrMissingArgument, "no fields provided; set at least one --app-name/--header/--footer/--markdown/--log-level/--log-format/--ui-accent/--ui-code-theme", "")
		}

		return saveConfigChanges(out, ctx, changed, "changed")
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset",
	Short: "Clear one or more config fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		ctx, err := loadConfigContextAllowMissing()
		if err != nil {
			return handleError(out, ErrConfigInvalid, err, "")
		}
		if !ctx.configExists {
			return handleErrorMsg(out, ErrFileNotFound, fmt.Sprintf("config file not found: %s", ctx.configPath), "Run 'paramz config init' first")
		}

		changed := make([]string, 0, 5)
		if configUnsetHeader {
			ctx.cfg.App.Header = ""
			changed = append(changed, "app.header")
		}
		if configUnsetFooter {
			ctx.cfg.App.Footer = ""
			changed = append(changed, "app.footer")
		}
		if configUnsetMarkdown {
			ctx.cfg.App.Markdown = false
			changed = append(changed, "app.markdown")
		}
		if configUnsetUIAccent {
			ctx.cfg.UI.Accent = ""
			changed = append(changed, "ui.accent")
		}
		if configUnsetUICodeTheme {
			ctx.cfg.UI.CodeTheme = ""
			changed = append(changed, "ui.code_theme")
		}

		if len(changed) == 0 {
			return handleErrorMsg(out, ErrMissingArgument, "no fields selected; pass one or more unset flags", "")
		}

		return saveConfigChanges(out, ctx, changed, "cleared")
	},
}

func saveConfigChanges(out io.Writer, ctx *configContext, changed []string, verb string) error {
	if err := config.SaveTo(ctx.configPath, ctx.cfg); err != nil {
		return handleError(out, ErrFileWriteError, err, "")
	}
	ctx.configExists = true

	if isJSONOutput() {
		data := configData(ctx)
		data[verb] = changed
		outputSuccess(out, data)
		return nil
	}

	fmt.Fprintln(out, ui.Successf("Updated config: %s", ctx.configPath))
	fmt.Fprintf(out, "%s: %s\n", verb, strings.Join(changed, ", "))
	return nil
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current config values",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})

	configSetCmd.Flags().StringVar(&configSetAppName, "app-name", "", "Set the application name used in help")
	configSetCmd.Flags().StringVar(&configSetHeader, "header", "", "Set the help header text")
	configSetCmd.Flags().StringVar(&configSetFooter, "footer", "", "Set the help footer text")
	configSetCmd.Flags().BoolVar(&configSetMarkdown, "markdown", false, "Render help header and footer as markdown")
	configSetCmd.Flags().StringVar(&configSetLogLevel, "log-level", "", "Set log level (debug|info|warn|error)")
	configSetCmd.Flags().StringVar(&configSetLogFormat, "log-format", "", "Set log format (text|json)")
	configSetCmd.Flags().StringVar(&configSetUIAccent, "ui-accent", "", "Set UI accent color (ANSI 0-255 or #RRGGBB)")
	configSetCmd.Flags().StringVar(&configSetUICodeTheme, "ui-code-theme", "", "Set markdown code theme name")

	configUnsetCmd.Flags().BoolVar(&configUnsetHeader, "header", false, "Clear app.header")
	configUnsetCmd.Flags().BoolVar(&configUnsetFooter, "footer", false, "Clear app.footer")
	configUnsetCmd.Flags().BoolVar(&configUnsetMarkdown, "markdown", false, "Clear app.markdown")
	configUnsetCmd.Flags().BoolVar(&configUnsetUIAccent, "ui-accent", false, "Clear ui.accent")
	configUnsetCmd.Flags().BoolVar(&configUnsetUICodeTheme, "ui-code-theme", false, "Clear ui.code_theme")

	rootCmd.AddCommand(configCmd)
}
