package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/dpeek64/retrodisasm/internal/blockmap"
	"github.com/dpeek64/retrodisasm/internal/command"
	"github.com/dpeek64/retrodisasm/internal/pipeline"
	"github.com/dpeek64/retrodisasm/internal/project"
)

// request is the wire shape of one line of a server-stdio session: a
// single command plus enough addressing to route it, mirroring spec.md §5's
// single-writer serial event loop (one command processed at a time, in the
// order received, each answered before the next is read).
type request struct {
	Op        string `json:"op"`
	Start     uint32 `json:"start,omitempty"`
	Length    uint32 `json:"length,omitempty"`
	Addr      uint32 `json:"addr,omitempty"`
	BlockType string `json:"block_type,omitempty"`
	Name      string `json:"name,omitempty"`
	Text      string `json:"text,omitempty"`
}

type response struct {
	OK    bool           `json:"ok"`
	Error string         `json:"error,omitempty"`
	Lines []pipeline.Line `json:"lines,omitempty"`
}

var blockTypeNames = map[string]blockmap.Type{
	"undefined":       blockmap.Undefined,
	"code":            blockmap.Code,
	"byte_data":       blockmap.ByteData,
	"word_data":       blockmap.WordData,
	"address_ref":     blockmap.AddressRef,
	"lohi_address":    blockmap.LoHiAddress,
	"lohi_word":       blockmap.LoHiWord,
	"hilo_address":    blockmap.HiLoAddress,
	"hilo_word":       blockmap.HiLoWord,
	"petscii_text":    blockmap.PetsciiText,
	"screencode_text": blockmap.ScreencodeText,
	"external_file":   blockmap.ExternalFile,
}

// session runs the serial command loop over the given reader/writer pair,
// shared by both the server-stdio and server subcommands.
func session(p *project.Project, h *command.History, r io.Reader, w io.Writer) error {
	dec := json.NewDecoder(bufio.NewReader(r))
	enc := json.NewEncoder(w)

	for {
		var req request
		if err := dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("decode request: %w", err)
		}

		resp := dispatch(p, h, req)
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
	}
}

func dispatch(p *project.Project, h *command.History, req request) response {
	switch req.Op {
	case "set_block_type":
		bt, known := blockTypeNames[req.BlockType]
		if !known {
			return response{Error: fmt.Sprintf("unknown block type %q", req.BlockType)}
		}
		cmd := command.Command{Kind: command.SetBlockType, Start: command.Address(req.Start), Length: command.Address(req.Length), BlockType: bt}
		if err := h.Do(p, cmd); err != nil {
			return response{Error: err.Error()}
		}
	case "toggle_splitter":
		if err := h.Do(p, command.Command{Kind: command.ToggleSplitter, Addr: command.Address(req.Addr)}); err != nil {
			return response{Error: err.Error()}
		}
	case "set_label":
		if err := h.Do(p, command.Command{Kind: command.SetLabel, Addr: command.Address(req.Addr), Name: req.Name}); err != nil {
			return response{Error: err.Error()}
		}
	case "set_side_comment":
		if err := h.Do(p, command.Command{Kind: command.SetSideComment, Addr: command.Address(req.Addr), Text: req.Text}); err != nil {
			return response{Error: err.Error()}
		}
	case "set_line_comment":
		if err := h.Do(p, command.Command{Kind: command.SetLineComment, Addr: command.Address(req.Addr), Text: req.Text}); err != nil {
			return response{Error: err.Error()}
		}
	case "toggle_bookmark":
		if err := h.Do(p, command.Command{Kind: command.ToggleBookmark, Addr: command.Address(req.Addr)}); err != nil {
			return response{Error: err.Error()}
		}
	case "analyze":
		if err := h.Do(p, command.Command{Kind: command.Analyze}); err != nil {
			return response{Error: err.Error()}
		}
	case "undo":
		if _, err := h.Undo(p); err != nil {
			return response{Error: err.Error()}
		}
	case "redo":
		if _, err := h.Redo(p); err != nil {
			return response{Error: err.Error()}
		}
	case "render":
		return response{OK: true, Lines: pipeline.Render(p).Lines}
	default:
		return response{Error: fmt.Sprintf("unknown op %q", req.Op)}
	}
	return response{OK: true}
}

func newServerStdioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server-stdio <binary-file>",
		Short: "serve the command queue over stdin/stdout as newline-delimited JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(args[0])
			if err != nil {
				return err
			}
			var h command.History
			h.Log = configureLogger()
			return session(p, &h, os.Stdin, os.Stdout)
		},
	}
}

func newServerCmd() *cobra.Command {
	var addr string
	c := &cobra.Command{
		Use:   "server <binary-file>",
		Short: "serve the command queue over a TCP socket, one session per connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(args[0])
			if err != nil {
				return err
			}
			logger := configureLogger()

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fail("listen on %s: %v", addr, err)
			}
			defer ln.Close()
			logger.Info("listening", "addr", addr)

			// One connection at a time: the project and its History are not
			// safe for concurrent mutation, and spec.md §5 calls for a
			// single-writer serial event loop regardless of transport.
			var h command.History
			h.Log = logger
			for {
				conn, err := ln.Accept()
				if err != nil {
					return fmt.Errorf("accept: %w", err)
				}
				if err := session(p, &h, conn, conn); err != nil {
					logger.Warn("session ended", "err", err)
				}
				conn.Close()
			}
		},
	}
	c.Flags().StringVar(&addr, "addr", "127.0.0.1:4510", "listen address")
	return c
}
