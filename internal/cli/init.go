package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antennamap/antennamap/pkg/errors"
	mapio "github.com/antennamap/antennamap/pkg/io"
	"github.com/antennamap/antennamap/pkg/pipeline"
)

// initCommand creates the init command, which writes the sample map.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default 12x12 sample map",
		Long: `Write the default 12x12 sample map. Paths ending in .bin get the binary
format; any other extension gets one text row per line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := pipeline.DefaultMapPath
			if len(args) > 0 {
				path = args[0]
			}
			if err := errors.ValidatePath(path); err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
			}

			m := mapio.DefaultMap()
			if err := mapio.Save(path, m); err != nil {
				return err
			}
			c.Logger.Debug("wrote default map", "path", path, "binary", mapio.IsBinary(path))

			w := cmd.OutOrStdout()
			printSuccess(w, "Wrote %dx%d map", m.Rows, m.Cols)
			printFile(w, path)
			printNextStep(w, "Run the queries", fmt.Sprintf("%s run %s", appName, path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}
