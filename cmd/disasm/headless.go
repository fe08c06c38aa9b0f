package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dpeek64/retrodisasm/internal/blockmap"
	"github.com/dpeek64/retrodisasm/internal/command"
	"github.com/dpeek64/retrodisasm/internal/pipeline"
)

// newHeadlessCmd implements a one-shot, non-interactive render: load the
// binary, classify the whole image as Code, run the analyzer to a fixed
// point, render the pipeline and print it.
func newHeadlessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "headless <binary-file>",
		Short: "load a binary, analyze it once and print the disassembly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(args[0])
			if err != nil {
				return err
			}
			logger := configureLogger()

			var h command.History
			h.Log = logger
			classify := command.Command{Kind: command.SetBlockType, Start: p.Origin, Length: p.End() - p.Origin, BlockType: blockmap.Code}
			if err := h.Do(p, classify); err != nil {
				return fail("classify whole image as code: %v", err)
			}
			if err := h.Do(p, command.Command{Kind: command.Analyze}); err != nil {
				return fail("analyze: %v", err)
			}

			res := pipeline.Render(p)
			w := cmd.OutOrStdout()
			for _, line := range res.Lines {
				if line.SideComment != "" {
					fmt.Fprintf(w, "%s %s\n", line.Text, line.SideComment)
				} else {
					fmt.Fprintln(w, line.Text)
				}
			}
			return nil
		},
	}
}
