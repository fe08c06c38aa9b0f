package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/dpeek64/retrodisasm/internal/pipeline"
)

// newExportAsmCmd renders the current project and writes one line of
// assembly source per pipeline.Line, in render order.
func newExportAsmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-asm <binary-file> <out-file>",
		Short: "render the disassembly and write it as assembly source",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(args[0])
			if err != nil {
				return err
			}

			out, err := os.Create(args[1])
			if err != nil {
				return fail("create %s: %v", args[1], err)
			}
			defer out.Close()

			w := bufio.NewWriter(out)
			header, err := pipeline.RenderHeader(p)
			if err != nil {
				return fail("render header: %v", err)
			}
			if _, err := w.WriteString(header); err != nil {
				return err
			}

			for _, line := range pipeline.Render(p).Lines {
				if _, err := w.WriteString(line.Text); err != nil {
					return err
				}
				if line.SideComment != "" {
					if _, err := w.WriteString(" " + line.SideComment); err != nil {
						return err
					}
				}
				if err := w.WriteByte('\n'); err != nil {
					return err
				}
			}
			if err := w.Flush(); err != nil {
				return fail("write %s: %v", args[1], err)
			}
			ok("wrote %s", args[1])
			return nil
		},
	}
}
