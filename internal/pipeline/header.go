package pipeline

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/dpeek64/retrodisasm/internal/formatter"
	"github.com/dpeek64/retrodisasm/internal/project"
	"github.com/dpeek64/retrodisasm/internal/symbols"
)

// headerTemplate is the export-file header, adapted from the teacher's own
// text/template disasmHeader: instead of a BBC OS call/vector table, it
// lists the External platform addresses the disassembly actually
// references.
var headerTemplate = template.Must(template.New("header").Parse(
	`{{.Comment}} ------------------------------------------------------------
{{.Comment}} disassembled by retrodisasm
{{.Comment}} platform: {{.Platform}}   assembler: {{.Assembler}}   origin: ${{printf "%04X" .Origin}}
{{.Comment}} ------------------------------------------------------------
{{if .ExternalRefs}}
{{.Comment}} referenced platform addresses
{{range .ExternalRefs}}{{$.Comment}} {{printf "%-12s" .Name}} = ${{printf "%04X" .Address}}
{{end}}{{end}}`))

type headerData struct {
	Comment      string
	Platform     string
	Assembler    string
	Origin       uint32
	ExternalRefs []symbols.Entry
}

// RenderHeader renders the file-level header that precedes the body lines
// of an exported listing: project metadata plus every External label the
// disassembly actually references. ExternalRefs is empty until Analyze has
// run at least once (spec.md §4.2), since "referenced" is derived from the
// cross-reference index.
func RenderHeader(p *project.Project) (string, error) {
	f := formatter.For(p.Settings.Assembler)

	var refs []symbols.Entry
	for _, e := range symbols.All(p) {
		if e.Kind != project.External {
			continue
		}
		if len(symbols.CrossRefsOf(p, e.Address)) == 0 {
			continue
		}
		refs = append(refs, e)
	}

	data := headerData{
		Comment:      f.CommentPrefix(),
		Platform:     p.Settings.Platform.String(),
		Assembler:    p.Settings.Assembler.String(),
		Origin:       uint32(p.Origin),
		ExternalRefs: refs,
	}

	var sb strings.Builder
	if err := headerTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("pipeline: render header: %w", err)
	}
	return sb.String(), nil
}
