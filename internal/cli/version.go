package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/paramz/internal/buildinfo"
	"github.com/aidanlsb/paramz/internal/ui"
)

const defaultModulePath = "github.com/aidanlsb/paramz"

type versionInfo struct {
	Version    string `json:"version"`
	ModulePath string `json:"module_path"`
	Commit     string `json:"commit,omitempty"`
	CommitTime string `json:"commit_time,omitempty"`
	Modified   bool   `json:"modified"`
	GoVersion  string `json:"go_version"`
	GOOS       string `json:"goos"`
	GOARCH     string `json:"goarch"`
}

var readBuildInfo = debug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show paramz version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentVersionInfo()
		out := cmd.OutOrStdout()

		if isJSONOutput() {
			outputSuccess(out, info)
			return nil
		}

		fmt.Fprintf(out, "paramz %s\n", info.Version)
		table := ui.NewTable(2)
		table.AddRow("module", info.ModulePath)
		if info.Commit != "" {
			table.AddRow("commit", info.Commit)
		}
		if info.CommitTime != "" {
			table.AddRow("commit_time", info.CommitTime)
		}
		table.AddRow("go", info.GoVersion)
		table.AddRow("platform", info.GOOS+"/"+info.GOARCH)
		table.AddRow("modified", fmt.Sprintf("%t", info.Modified))
		fmt.Fprint(out, table.String())
		return nil
	},
}

// currentVersionInfo merges the embedded module build info with the values
// stamped into buildinfo at link time. Build info wins when both are set.
func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:    "devel",
		ModulePath: defaultModulePath,
		GoVersion:  runtime.Version(),
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		settings := make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}

		info.Version = normalizeVersion(bi.Main.Version)
		info.ModulePath = firstNonEmpty(bi.Main.Path, info.ModulePath)
		info.GoVersion = firstNonEmpty(bi.GoVersion, info.GoVersion)
		info.GOOS = firstNonEmpty(settings["GOOS"], info.GOOS)
		info.GOARCH = firstNonEmpty(settings["GOARCH"], info.GOARCH)
		info.Commit = settings["vcs.revision"]
		info.CommitTime = settings["vcs.time"]
		info.Modified = strings.EqualFold(settings["vcs.modified"], "true")
	}

	if info.Version == "devel" {
		info.Version = normalizeVersion(buildinfo.Version)
	}
	info.Commit = firstNonEmpty(info.Commit, buildinfo.Commit)
	info.CommitTime = firstNonEmpty(info.CommitTime, buildinfo.Date)
	return info
}

func normalizeVersion(version string) string {
	if version == "" || version == "(devel)" {
		return "devel"
	}
	return version
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
