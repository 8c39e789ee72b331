package cli

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/paramz/docs"
	"github.com/aidanlsb/paramz/internal/ui"
)

// docTopics returns the embedded topic names, sorted.
func docTopics() ([]string, error) {
	entries, err := fs.ReadDir(docs.FS, ".")
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		topics = append(topics, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(topics)
	return topics, nil
}

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Read the bundled guides",
	Long: `Read the bundled guides.

Without a topic, lists the available topics. Guides are styled on terminals
and printed as plain text otherwise.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		topics, err := docTopics()
		if err != nil {
			return handleError(out, ErrFileReadError, err, "")
		}

		if len(args) == 0 {
			if isJSONOutput() {
				outputSuccess(out, map[string]interface{}{"topics": topics})
				return nil
			}
			list := ui.NewList()
			for _, topic := range topics {
				list.Add(topic)
			}
			fmt.Fprintln(out, ui.Header("Topics"))
			fmt.Fprint(out, list.String())
			return nil
		}

		topic := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(args[0])), ".md")
		content, err := fs.ReadFile(docs.FS, topic+".md")
		if err != nil {
			return handleErrorMsg(out, ErrFileNotFound, fmt.Sprintf("unknown topic %q", args[0]), "Run 'paramz docs' to list topics")
		}

		if isJSONOutput() {
			outputSuccess(out, map[string]interface{}{
				"topic":   topic,
				"content": string(content),
			})
			return nil
		}

		d := ui.NewDisplayContextFor(out)
		if !d.IsTTY {
			fmt.Fprintln(out, ui.PlainMarkdown(string(content)))
			return nil
		}
		rendered, err := ui.RenderMarkdown(string(content), d.AvailableWidth(ui.MarkdownRenderMargin))
		if err != nil {
			return handleError(out, ErrInternal, err, "")
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
