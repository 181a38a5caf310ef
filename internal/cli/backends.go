package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/svg2pdf/pkg/render"
)

// newBackendsCmd creates the backends command, which lists the known
// rendering backends and whether each is available on this system.
func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List rendering backends and their availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, b := range render.Backends() {
				if b.Available() {
					printSuccess("%s", b.Name())
				} else {
					printWarning("%s (not installed)", b.Name())
				}
			}

			selected, err := render.Detect("")
			if err != nil {
				return err
			}
			printKeyValue("default", selected.Name())
			return nil
		},
	}
}
