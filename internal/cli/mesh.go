package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/eduviz/internal/mesh"
)

func newMeshCmd() *cobra.Command {
	var (
		size    float64
		pngPath string
		px      int
	)
	cmd := &cobra.Command{
		Use:   "mesh <cube|sphere>",
		Short: "Print a primitive mesh as JSON or render a PNG preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, typ := mesh.NewRegistry().Get(args[0], size)
			if pngPath == "" {
				return writeJSON(cmd, m)
			}
			img, err := mesh.RenderPreview(m, typ, px)
			if err != nil {
				return err
			}
			if err := os.WriteFile(pngPath, img, 0o644); err != nil {
				return fmt.Errorf("write preview: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s preview to %s\n", typ, pngPath)
			return err
		},
	}
	f := cmd.Flags()
	f.Float64Var(&size, "size", mesh.DefaultSize, "edge length (cube) or diameter (sphere)")
	f.StringVar(&pngPath, "png", "", "write a wireframe PNG preview to this path instead of JSON")
	f.IntVar(&px, "px", mesh.DefaultPreviewSize, "preview width and height in pixels")
	return cmd
}
