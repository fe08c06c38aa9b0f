package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dpeek64/retrodisasm/internal/command"
	"github.com/dpeek64/retrodisasm/internal/project"
)

// newImportLabelsCmd applies every record in a label file through the
// command layer, one SetLabel per record, so validation and collision
// rules are identical to an interactive rename.
func newImportLabelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-labels <binary-file> <label-file>",
		Short: "apply a yaml label file to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fail("read %s: %v", args[1], err)
			}
			records, err := project.ParseLabelFile(data)
			if err != nil {
				return err
			}

			var h command.History
			h.Log = configureLogger()
			cmds := make([]command.Command, len(records))
			for i, r := range records {
				cmds[i] = command.Command{Kind: command.SetLabel, Addr: command.Address(r.Address), Name: r.Name}
			}
			if err := h.Batch(p, cmds); err != nil {
				return fail("import labels: %v", err)
			}
			ok("applied %d label(s) from %s", len(records), args[1])
			return nil
		},
	}
}

// newExportLabelsCmd writes every User label as a yaml label file.
func newExportLabelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-labels <binary-file> <out-file>",
		Short: "write every user label to a yaml label file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(args[0])
			if err != nil {
				return err
			}
			data, err := p.ExportLabels()
			if err != nil {
				return fail("export labels: %v", err)
			}
			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				return fail("write %s: %v", args[1], err)
			}
			ok("wrote %s", args[1])
			return nil
		},
	}
}
