package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/scanmaster/blockdraw/pkg/block"
	"github.com/scanmaster/blockdraw/pkg/layout"
	"github.com/scanmaster/blockdraw/pkg/pipeline"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	width  float64
	height float64
	config string
}

// viewportJSON is the wire shape of one viewport in `layout` output.
type viewportJSON struct {
	Name  string  `json:"name"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Scale float64 `json:"scale"`
}

// layoutJSON is the wire shape of the `layout` command output.
type layoutJSON struct {
	Part   string         `json:"part"`
	Class  string         `json:"class"`
	Margin float64        `json:"margin"`
	Views  []viewportJSON `json:"views"`
}

// layoutCommand creates the layout command, which computes the viewport
// partition without drawing anything. Useful for inspecting scale and
// placement decisions.
func (c *CLI) layoutCommand() *cobra.Command {
	opts := layoutOpts{
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "layout [spec.json]",
		Short: "Print the computed viewport partition as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args[0], &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "canvas width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "canvas height")
	cmd.Flags().StringVar(&opts.config, "config", "", "layout config file (TOML)")

	return cmd
}

func (c *CLI) runLayout(cmd *cobra.Command, input string, opts *layoutOpts) error {
	spec, err := block.LoadSpec(input)
	if err != nil {
		return err
	}

	runner := c.newRunner(true)
	lay, err := runner.ComputeLayout(cmd.Context(), spec, pipeline.Options{
		Spec:       spec,
		Width:      opts.width,
		Height:     opts.height,
		ConfigPath: opts.config,
	})
	if err != nil {
		return err
	}

	out := layoutJSON{
		Part:   spec.ID,
		Class:  string(lay.Class),
		Margin: lay.Margin,
	}
	for _, name := range layout.AllViews {
		vp := lay.Views[name]
		out.Views = append(out.Views, viewportJSON{
			Name:  string(name),
			Label: vp.Label,
			X:     vp.Rect.X,
			Y:     vp.Rect.Y,
			W:     vp.Rect.W,
			H:     vp.Rect.H,
			Scale: vp.Scale,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
