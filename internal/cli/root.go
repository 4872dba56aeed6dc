package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type options struct {
	configPath string
	v          *viper.Viper
}

// NewRootCmd builds the eduviz command tree writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	opts := &options{v: viper.New()}

	root := &cobra.Command{
		Use:   "eduviz",
		Short: "Rule-based educational content and 3D primitive generator",
		Long: `eduviz classifies a free-text prompt into a subject, fills that subject's
response template and picks a 3D primitive for it. It serves the generation API
and the mesh service, and exposes the same pipeline on the command line.`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $EDUVIZ_CONFIG_PATH or ./config/config.yaml)")

	root.AddCommand(
		newServeCmd(opts),
		newGenerateCmd(),
		newMeshCmd(),
		newSubjectsCmd(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute(out io.Writer) error {
	return NewRootCmd(out).Execute()
}
