package cli

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yungbote/eduviz/internal/domain/content"
	"github.com/yungbote/eduviz/internal/generator"
)

type generateOutput struct {
	content.GeneratedResponse
	PrimitiveType string `json:"primitive_type,omitempty"`
	Concept       string `json:"concept,omitempty"`
	Object        string `json:"object,omitempty"`
}

func newGenerateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "generate <prompt...>",
		Short: "Generate the educational response for a prompt",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			out, err := generator.New().Generate(cmd.Context(), content.PromptRequest{Prompt: prompt})
			if err != nil {
				return err
			}
			res := generateOutput{GeneratedResponse: out.Response}
			if verbose {
				res.PrimitiveType = out.Primitive
				res.Concept = out.Concept
				res.Object = out.Object
			}
			return writeJSON(cmd, res)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include primitive, concept and object")
	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
