package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dpeek64/retrodisasm/internal/formatter"
	"github.com/dpeek64/retrodisasm/internal/platform"
	"github.com/dpeek64/retrodisasm/internal/project"
)

const version = "0.1.0"

// rootFlags holds the persistent flags every subcommand reads to build a
// Project from a raw binary file.
type rootFlags struct {
	origin    uint16
	platform  string
	assembler string
	settings  string
	logLevel  string
}

var flags rootFlags

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "disasm [binary-file]",
		Short:   "Interactive 6502/6510 disassembler engine for Commodore 8-bit binaries",
		Version: version,
	}

	root.PersistentFlags().Uint16Var(&flags.origin, "origin", 0x0800, "load address of the binary's first byte")
	root.PersistentFlags().StringVar(&flags.platform, "platform", "c64", "target platform: c64, c128, vic20, plus4, pet, 1541")
	root.PersistentFlags().StringVar(&flags.assembler, "assembler", "64tass", "formatter dialect: 64tass, acme, kick, dasm")
	root.PersistentFlags().StringVar(&flags.settings, "settings", "", "TOML settings sidecar file; when given it replaces all document settings, including --assembler")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "debug, info, warn, error")

	root.AddCommand(newHeadlessCmd())
	root.AddCommand(newExportAsmCmd())
	root.AddCommand(newImportLabelsCmd())
	root.AddCommand(newExportLabelsCmd())
	root.AddCommand(newServerStdioCmd())
	root.AddCommand(newServerCmd())

	return root
}

func configureLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	switch strings.ToLower(flags.logLevel) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

func parsePlatform(s string) (platform.ID, error) {
	switch strings.ToLower(s) {
	case "c64":
		return platform.C64, nil
	case "c128":
		return platform.C128, nil
	case "vic20", "vic-20":
		return platform.VIC20, nil
	case "plus4", "plus/4":
		return platform.Plus4, nil
	case "pet":
		return platform.PET, nil
	case "1541", "drive1541":
		return platform.Drive1541, nil
	default:
		return 0, fmt.Errorf("unknown platform %q", s)
	}
}

func parseAssembler(s string) (formatter.Dialect, error) {
	switch strings.ToLower(s) {
	case "64tass", "tass64", "tass":
		return formatter.TASS64, nil
	case "acme":
		return formatter.ACME, nil
	case "kick", "kickassembler", "kickass":
		return formatter.KickAssembler, nil
	case "dasm":
		return formatter.DASM, nil
	default:
		return 0, fmt.Errorf("unknown assembler dialect %q", s)
	}
}

// loadProject reads path and applies --platform/--origin/--assembler. A
// --settings sidecar, if given, then replaces the whole Settings value, so
// its assembler (and every other field) wins over the --assembler flag;
// --platform still selects the External label table loaded by project.New.
func loadProject(path string) (*project.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	plat, err := parsePlatform(flags.platform)
	if err != nil {
		return nil, err
	}
	dialect, err := parseAssembler(flags.assembler)
	if err != nil {
		return nil, err
	}

	p := project.New(flags.origin, data, plat)
	p.Settings.Assembler = dialect

	if flags.settings != "" {
		sdata, err := os.ReadFile(flags.settings)
		if err != nil {
			return nil, fmt.Errorf("read settings %s: %w", flags.settings, err)
		}
		s, err := project.DecodeSettingsTOML(sdata)
		if err != nil {
			return nil, fmt.Errorf("decode settings %s: %w", flags.settings, err)
		}
		p.Settings = s
	}

	return p, nil
}

func ok(format string, args ...any) {
	color.New(color.FgGreen, color.Bold).Fprint(os.Stderr, "ok: ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func fail(format string, args ...any) error {
	color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
	return fmt.Errorf(format, args...)
}
