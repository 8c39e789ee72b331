package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/paramz/internal/param"
	"github.com/aidanlsb/paramz/internal/parser"
)

// RegistryFunc builds the parameter registry for one invocation of cmd.
type RegistryFunc func(cmd *cobra.Command) (*param.Registry, error)

// NewParamCommand creates a cobra command whose arguments are parsed by a
// parameter registry instead of cobra's own flags. Help requests are
// answered by the generated help page; run receives the session otherwise.
//
// Global flags such as --config and --json are honored when they come
// before the registry's own arguments.
func NewParamCommand(use, short string, registry RegistryFunc, run func(cmd *cobra.Command, s *parser.Session) error) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := takeHostFlags(cmd, args); err != nil {
				return err
			}
			return bootstrap(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			args, err := takeHostFlags(cmd, args)
			if err != nil {
				return err
			}
			reg, err := registry(cmd)
			if err != nil {
				return err
			}

			appCfg := getConfig()
			s, err := parser.New(reg, appCfg.Text(), args,
				parser.WithOutput(cmd.OutOrStdout()),
				parser.WithErrOutput(cmd.ErrOrStderr()),
				parser.WithLogger(getLogger()),
				parser.WithMarkdown(appCfg.App.Markdown),
			)
			switch {
			case err == nil:
				return run(cmd, s)
			case param.IsKind(err, param.KindConfiguration) && errors.Is(err, parser.ErrHelpRequested):
				// The diagnostic is already on stderr.
				return fmt.Errorf("%w: %w", errReported, err)
			case errors.Is(err, parser.ErrHelpRequested):
				return nil
			default:
				return err
			}
		},
	}
}

// takeHostFlags applies the root's persistent flags found at the front of
// args and returns the rest. Cobra leaves them there for commands that
// parse their own arguments. Scanning stops at the first argument that is
// not a long persistent flag, so the registry sees everything after it.
func takeHostFlags(cmd *cobra.Command, args []string) ([]string, error) {
	flags := cmd.Root().PersistentFlags()
	for len(args) > 0 {
		arg := args[0]
		if arg == "--" || !strings.HasPrefix(arg, "--") {
			break
		}
		name, value, hasValue := strings.Cut(arg[2:], "=")
		f := flags.Lookup(name)
		if f == nil {
			break
		}
		args = args[1:]
		if !hasValue {
			switch {
			case f.NoOptDefVal != "":
				value = f.NoOptDefVal
			case len(args) > 0:
				value, args = args[0], args[1:]
			default:
				return nil, fmt.Errorf("flag needs an argument: --%s", name)
			}
		}
		if err := flags.Set(name, value); err != nil {
			return nil, fmt.Errorf("invalid argument %q for --%s: %w", value, name, err)
		}
	}
	return args, nil
}
