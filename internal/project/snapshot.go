package project

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// RunSnapshot is the serializable form of one blockmap.Run.
type RunSnapshot struct {
	Start     uint32 `yaml:"start"`
	Length    uint32 `yaml:"length"`
	Type      int    `yaml:"type"`
	Collapsed bool   `yaml:"collapsed"`
}

// LabelRecord is one entry of the label file format read by the
// import-labels subcommand and written by export-labels, and also the unit
// snapshot uses for labels (Snapshot records User labels only).
type LabelRecord struct {
	Address uint32 `yaml:"address"`
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
}

// Snapshot is a pure-data, order-independent-free (every slice is sorted)
// projection of a Project suitable for byte-exact comparison after
// round-tripping through apply+undo (property #7).
type Snapshot struct {
	Origin    uint32        `yaml:"origin"`
	Runs      []RunSnapshot `yaml:"runs"`
	Splitters []uint32      `yaml:"splitters"`
	Labels    []LabelRecord `yaml:"labels"`
	SideComments []struct {
		Address uint32 `yaml:"address"`
		Text    string `yaml:"text"`
	} `yaml:"side_comments"`
	LineComments []struct {
		Address uint32 `yaml:"address"`
		Text    string `yaml:"text"`
	} `yaml:"line_comments"`
	Bookmarks []uint32 `yaml:"bookmarks"`
	Settings  Settings `yaml:"-"`
}

// Snapshot captures p's mutable state as a comparable value. Bytes are
// deliberately excluded: they are immutable for the project's lifetime and
// contribute nothing to undo-fidelity comparison.
func (p *Project) Snapshot() Snapshot {
	s := Snapshot{Origin: uint32(p.Origin), Settings: p.Settings}

	for _, r := range p.Blocks.AllRuns() {
		s.Runs = append(s.Runs, RunSnapshot{
			Start: uint32(r.Start), Length: uint32(r.Length),
			Type: int(r.Type), Collapsed: r.Collapsed,
		})
	}
	for _, a := range p.Blocks.Splitters() {
		s.Splitters = append(s.Splitters, uint32(a))
	}

	addUser := func(a Address, name string) {
		s.Labels = append(s.Labels, LabelRecord{Address: uint32(a), Name: name, Kind: "User"})
	}
	for a, n := range p.Labels.AllUser() {
		addUser(a, n)
	}
	sort.Slice(s.Labels, func(i, j int) bool {
		if s.Labels[i].Address != s.Labels[j].Address {
			return s.Labels[i].Address < s.Labels[j].Address
		}
		return s.Labels[i].Name < s.Labels[j].Name
	})

	type kv struct {
		a Address
		s string
	}
	var sides, lines []kv
	for a := p.Origin; a < p.End(); a++ {
		if v, ok := p.Comments.Side(a); ok {
			sides = append(sides, kv{a, v})
		}
		if v, ok := p.Comments.Line(a); ok {
			lines = append(lines, kv{a, v})
		}
	}
	for _, e := range sides {
		s.SideComments = append(s.SideComments, struct {
			Address uint32 `yaml:"address"`
			Text    string `yaml:"text"`
		}{uint32(e.a), e.s})
	}
	for _, e := range lines {
		s.LineComments = append(s.LineComments, struct {
			Address uint32 `yaml:"address"`
			Text    string `yaml:"text"`
		}{uint32(e.a), e.s})
	}

	for _, a := range p.Bookmarks.All() {
		s.Bookmarks = append(s.Bookmarks, uint32(a))
	}
	sort.Slice(s.Bookmarks, func(i, j int) bool { return s.Bookmarks[i] < s.Bookmarks[j] })

	return s
}

// MarshalYAML renders the snapshot as yaml, for debugging/property-test
// diffing. The label file written by export-labels comes from
// ExportLabels, not from this method.
func (s Snapshot) MarshalYAML() ([]byte, error) { return yaml.Marshal(s) }

// EncodeSettingsTOML renders settings as a human-editable sidecar file
// (§6 document settings), grounded on BurntSushi/toml as used by
// lookbusy1344-arm_emulator for an equivalent purpose.
func EncodeSettingsTOML(s Settings) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return nil, fmt.Errorf("project: encode settings: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeSettingsTOML parses a settings sidecar file.
func DecodeSettingsTOML(data []byte) (Settings, error) {
	var s Settings
	if _, err := toml.Decode(string(data), &s); err != nil {
		return Settings{}, fmt.Errorf("project: decode settings: %w", err)
	}
	return s, nil
}

// ExportLabels renders every User label as a yaml label file (the
// export-labels subcommand).
func (p *Project) ExportLabels() ([]byte, error) {
	var records []LabelRecord
	for a, n := range p.Labels.AllUser() {
		records = append(records, LabelRecord{Address: uint32(a), Name: n, Kind: "User"})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Address < records[j].Address })
	return yaml.Marshal(records)
}

// ParseLabelFile decodes a yaml label file (import-labels) into records;
// applying them is the command layer's job (one SetLabel command per
// record), so that undo/validation behave identically to interactive
// labeling.
func ParseLabelFile(data []byte) ([]LabelRecord, error) {
	var records []LabelRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("project: parse label file: %w", err)
	}
	return records, nil
}
