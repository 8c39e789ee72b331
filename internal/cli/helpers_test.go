package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/paramz/internal/config"
)

// runCaptured invokes cmd.RunE directly and returns what it wrote to stdout.
func runCaptured(t *testing.T, cmd *cobra.Command, args []string) string {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	t.Cleanup(func() { cmd.SetOut(nil) })

	if err := cmd.RunE(cmd, args); err != nil {
		t.Fatalf("%s: RunE returned error: %v", cmd.Name(), err)
	}
	return buf.String()
}

// executeRoot runs the full command tree as a user would, with no config
// file present.
func executeRoot(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return executeRootWithConfig(t, filepath.Join(t.TempDir(), "missing.toml"), args...)
}

// executeRootWithConfig runs the full command tree with $PARAMZ_CONFIG set
// to cfgPath.
func executeRootWithConfig(t *testing.T, cfgPath string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, cfgPath)

	prevConfig := configPath
	prevJSON := jsonOutput
	t.Cleanup(func() {
		configPath = prevConfig
		jsonOutput = prevJSON
		cfg = nil
		logger = nil
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)

	err = Execute()
	return outBuf.String(), errBuf.String(), err
}
