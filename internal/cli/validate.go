package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scanmaster/blockdraw/pkg/block"
	"github.com/scanmaster/blockdraw/pkg/errors"
)

// validateCommand creates the validate command, which checks a spec file
// and prints a summary without rendering.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [spec.json]",
		Short: "Validate a block spec and print its summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}
}

func (c *CLI) runValidate(input string) error {
	spec, err := block.LoadSpec(input)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	geo := spec.Geometry
	printSuccess("Spec %s is valid", spec.ID)
	printKeyValue("profile", string(spec.Profile))
	printKeyValue("outer", fmt.Sprintf("Ø%.1f mm", geo.OuterDiameter()))
	if !geo.IsSolid() {
		printKeyValue("wall", fmt.Sprintf("%.1f mm", geo.Wall()))
	}
	printKeyValue("width", fmt.Sprintf("%.1f mm", geo.AxialWidth))
	printKeyValue("span", fmt.Sprintf("%.1f°", geo.SegmentAngle))
	printKeyValue("features", fmt.Sprintf("%d", len(spec.Features)))

	angles := spec.SectionAngles()
	printKeyValue("sections", fmt.Sprintf("A %.1f° / B %.1f° / C %.1f°",
		angles.A, angles.B, angles.C))

	for _, f := range spec.Features {
		printDetail("%-8s %s  angle %.1f°  axial %.1f  depth %.1f  Ø%.1f",
			f.Label, f.Kind, f.Angle, f.Axial, f.Depth, f.Diameter)
	}
	return nil
}
