package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/eduviz/internal/generator"
)

func newSubjectsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "List subjects with their keywords and templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			subjects := generator.Subjects()
			switch strings.ToLower(strings.TrimSpace(format)) {
			case "json", "":
				return writeJSON(cmd, subjects)
			case "yaml", "yml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(subjects); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unsupported format %q (want json or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}
