package job

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/overlay"
)

// Report is the outcome of one job.
type Report struct {
	ID        string       `json:"id" yaml:"id"`
	Operation string       `json:"operation" yaml:"operation"`
	Rings     []RingReport `json:"rings" yaml:"rings"`
}

// RingReport is one selected ring.
type RingReport struct {
	Source   int     `json:"source" yaml:"source"`
	Multi    int     `json:"multi" yaml:"multi"`
	Ring     int     `json:"ring" yaml:"ring"`
	Area     float64 `json:"area" yaml:"area"`
	Within   string  `json:"within" yaml:"within"`
	Reversed bool    `json:"reversed" yaml:"reversed"`
}

// NewReport lists the selection in identifier order.
func NewReport(j Job, sel overlay.SelectionMap) Report {
	r := Report{
		ID:        j.ID,
		Operation: j.Job.Operation.String(),
		Rings:     make([]RingReport, 0, len(sel)),
	}
	for _, id := range sel.IDs() {
		p := sel[id]
		r.Rings = append(r.Rings, RingReport{
			Source:   id.Source,
			Multi:    id.Multi,
			Ring:     id.Ring,
			Area:     p.Area,
			Within:   p.Within.String(),
			Reversed: p.Reversed,
		})
	}
	return r
}

// WriteReports encodes reports to w as "json" or "yaml".
func WriteReports(w io.Writer, format string, reports []Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("job: unknown report format %q", format)
}
