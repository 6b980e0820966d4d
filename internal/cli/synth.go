package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/grid"
)

// synthCommand creates the synth command for generating demo snapshots.
func (c *CLI) synthCommand() *cobra.Command {
	var (
		rows   int
		cols   int
		at     float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Generate a synthetic grid snapshot",
		Long: `Generate a synthetic grid snapshot.

The synth command produces a deterministic cell field without touching a
camera: the same dimensions and animation time always yield the same
file. Snapshots feed the render and preview commands when no capture
tool is attached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSynth(rows, cols, at, output)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 2, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", 3, "grid columns")
	cmd.Flags().Float64Var(&at, "time", 0, "animation time in seconds")
	cmd.Flags().StringVarP(&output, "output", "o", "snapshot.json", "output file")

	return cmd
}

// runSynth generates the cell field and writes the snapshot file.
func (c *CLI) runSynth(rows, cols int, at float64, output string) error {
	cfg := grid.Config{Rows: rows, Cols: cols}
	if err := cfg.Validate(); err != nil {
		return err
	}

	snap := grid.Snapshot{
		ID:    uuid.NewString(),
		Rows:  rows,
		Cols:  cols,
		Cells: grid.Synthesize(cfg, at),
	}
	if err := grid.WriteSnapshotFile(snap, output); err != nil {
		return fmt.Errorf("write snapshot %s: %w", output, err)
	}

	printSuccess("Snapshot complete")
	printFile(output)
	printDetail("%d cells at t=%.2fs, id %s", len(snap.Cells), at, snap.ID)
	printNewline()
	printNextStep("Render", "oscviz render --snapshot "+output)

	return nil
}
