package report

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the run manifest inside the output directory.
const ManifestFile = "manifest.yaml"

// Manifest describes one report run.
type Manifest struct {
	RunID       string          `yaml:"run_id"`
	GeneratedAt string          `yaml:"generated_at"`
	Format      string          `yaml:"format"`
	Reports     []ManifestEntry `yaml:"reports"`
}

// ManifestEntry describes one output of the run.
type ManifestEntry struct {
	Report string `yaml:"report"`
	Name   string `yaml:"name,omitempty"`
	Path   string `yaml:"path,omitempty"`
	Object string `yaml:"object,omitempty"`
	Rows   int    `yaml:"rows"`
	Error  string `yaml:"error,omitempty"`
}

// NewManifest summarizes the outcomes of a run.
func NewManifest(s *Summary, format string) Manifest {
	m := Manifest{
		RunID:       s.RunID,
		GeneratedAt: s.GeneratedAt.Format(time.RFC3339),
		Format:      format,
		Reports:     make([]ManifestEntry, 0, len(s.Outcomes)),
	}
	for _, o := range s.Outcomes {
		e := ManifestEntry{
			Report: o.Report,
			Name:   o.Name,
			Path:   o.Path,
			Object: o.Object,
			Rows:   o.Rows,
		}
		if o.Err != nil {
			e.Error = o.Err.Error()
		}
		m.Reports = append(m.Reports, e)
	}
	return m
}

// WriteManifest encodes the manifest as YAML to path.
func WriteManifest(path string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
