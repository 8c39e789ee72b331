package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/paramz/internal/param"
	"github.com/aidanlsb/paramz/internal/parser"
	"github.com/aidanlsb/paramz/internal/ui"
)

// helloRegistry declares the demo parameters: a help flag, a value that must
// not be empty, and a switch that prints a greeting.
func helloRegistry(cmd *cobra.Command) (*param.Registry, error) {
	out := cmd.OutOrStdout()
	return param.NewRegistry(
		&param.Descriptor{
			Name:   param.NameOf("HELP"),
			Option: &param.Option{Short: "h", Description: "Show this help"},
			Action: param.Help,
		},
		&param.Descriptor{
			Name:    param.NameOf("PARAM_A"),
			Option:  &param.Option{Short: "pa", TakesArg: true, Description: "Value to print"},
			Action:  param.Echo,
			Markers: []param.Marker{param.NotEmpty},
		},
		&param.Descriptor{
			Name:   param.NameOf("PARAM_B"),
			Option: &param.Option{Short: "pb", Description: "Prints a greeting"},
			Action: param.ActionFunc(func(param.Value) any {
				fmt.Fprintln(out, "Hello world")
				return nil
			}),
		},
	)
}

var helloCmd = NewParamCommand("hello [-h] [-pa <arg>] [-pb]", "Run the demo parameter set", helloRegistry, runHello)

// runHello prints the param_a value when every parameter is valid and the
// failed rules otherwise.
func runHello(cmd *cobra.Command, s *parser.Session) error {
	values, err := s.Values()
	if err != nil {
		return err
	}
	failures, err := s.FailedValidations()
	if err != nil {
		return err
	}

	if len(failures) == 0 {
		if v, ok := values[param.NameOf("PARAM_A")]; ok && v != nil {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	}

	list := ui.NewList()
	for _, name := range failures.Names() {
		for _, rule := range failures[name] {
			list.Add(fmt.Sprintf("%s: %s", name, rule))
		}
	}
	errOut := cmd.ErrOrStderr()
	ui.Diagnose(errOut, "invalid parameters "+ui.Count(list.Len(), "failure", "failures"))
	fmt.Fprint(errOut, list.String())
	return fmt.Errorf("%w: invalid parameters", errReported)
}

func init() {
	rootCmd.AddCommand(helloCmd)
}
