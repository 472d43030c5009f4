// Package job reads ringselect job files and reports their results.
//
// A job file is YAML (or JSON) holding one or more overlay jobs:
//
//	jobs:
//	  - id: parcel-minus-road
//	    operation: difference
//	    geometries:
//	      - polygon:
//	          exterior: [[0, 0], [10, 0], [10, 10], [0, 10]]
//	      - box: {min: [2, 2], max: [4, 4]}
//	    intersections:
//	      - {source: 0, ring: 0}
//	    within:
//	      - id: {source: 1, ring: -1}
//	        code: 1
//
// Files are validated against an embedded JSON Schema before decoding.
package job

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/overlay"
)

//go:embed schema.json
var schemaJSON []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

// ErrInvalidJobFile is wrapped by every schema validation failure.
var ErrInvalidJobFile = errors.New("job: invalid job file")

// File is a decoded job file.
type File struct {
	Jobs []Spec `yaml:"jobs"`
}

// Spec is one job as written in a job file.
type Spec struct {
	ID            string         `yaml:"id"`
	Operation     string         `yaml:"operation"`
	Geometries    []GeometrySpec `yaml:"geometries"`
	Intersections []RingIDSpec   `yaml:"intersections"`
	Within        []WithinSpec   `yaml:"within"`
}

// GeometrySpec holds exactly one of Box, Ring or Polygon.
type GeometrySpec struct {
	Box     *BoxSpec     `yaml:"box"`
	Ring    [][]float64  `yaml:"ring"`
	Polygon *PolygonSpec `yaml:"polygon"`
}

// BoxSpec is a box given by two corners.
type BoxSpec struct {
	Min []float64 `yaml:"min"`
	Max []float64 `yaml:"max"`
}

// PolygonSpec is a polygon with optional holes.
type PolygonSpec struct {
	Exterior  [][]float64   `yaml:"exterior"`
	Interiors [][][]float64 `yaml:"interiors"`
}

// RingIDSpec addresses a ring. A missing multi means overlay.NoMulti.
type RingIDSpec struct {
	Source int  `yaml:"source"`
	Multi  *int `yaml:"multi"`
	Ring   int  `yaml:"ring"`
}

// WithinSpec is an externally computed within code for one ring.
type WithinSpec struct {
	ID   RingIDSpec `yaml:"id"`
	Code int        `yaml:"code"`
}

// Job is a decoded job ready to run.
type Job struct {
	ID          string
	Job         overlay.Job
	WithinCodes map[overlay.RingID]overlay.WithinCode
}

// Options returns the selection options carried by the job.
func (j Job) Options() []overlay.Option {
	if len(j.WithinCodes) == 0 {
		return nil
	}
	return []overlay.Option{overlay.WithWithinCodes(j.WithinCodes)}
}

// Load reads, validates and decodes the job file at path.
func Load(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %q: %w", path, err)
	}
	jobs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("job file %q: %w", path, err)
	}
	return jobs, nil
}

// Parse validates and decodes a job file. Jobs without an id get a random
// UUID.
func Parse(data []byte) ([]Job, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode job file: %w", err)
	}

	jobs := make([]Job, 0, len(f.Jobs))
	for i, spec := range f.Jobs {
		j, err := spec.Decode()
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// Validate checks a job file against the embedded schema.
func Validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse job file: %w", err)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidJobFile, strings.Join(msgs, "; "))
	}
	return nil
}

// Decode converts the spec into a runnable job.
func (s Spec) Decode() (Job, error) {
	op, err := overlay.ParseOverlayType(s.Operation)
	if err != nil {
		return Job{}, err
	}

	j := Job{
		ID: s.ID,
		Job: overlay.Job{
			Operation:     op,
			Intersections: overlay.RingSet{},
		},
	}
	if j.ID == "" {
		j.ID = uuid.NewString()
	}

	geoms := make([]overlay.Geometry, 0, len(s.Geometries))
	for i, g := range s.Geometries {
		geom, err := g.Decode()
		if err != nil {
			return Job{}, fmt.Errorf("geometry %d: %w", i, err)
		}
		geoms = append(geoms, geom)
	}
	switch len(geoms) {
	case 1:
		j.Job.A = geoms[0]
	case 2:
		j.Job.A, j.Job.B = geoms[0], geoms[1]
	default:
		return Job{}, fmt.Errorf("want 1 or 2 geometries, got %d", len(geoms))
	}

	for _, id := range s.Intersections {
		j.Job.Intersections.Add(id.RingID())
	}
	if len(s.Within) > 0 {
		j.WithinCodes = make(map[overlay.RingID]overlay.WithinCode, len(s.Within))
		for _, w := range s.Within {
			j.WithinCodes[w.ID.RingID()] = overlay.WithinCode(w.Code)
		}
	}
	return j, nil
}

// RingID converts the spec into an identifier.
func (s RingIDSpec) RingID() overlay.RingID {
	multi := overlay.NoMulti
	if s.Multi != nil {
		multi = *s.Multi
	}
	return overlay.NewRingID(s.Source, multi, s.Ring)
}

// Decode converts the spec into a geometry.
func (g GeometrySpec) Decode() (overlay.Geometry, error) {
	switch {
	case g.Box != nil:
		lo, err := point(g.Box.Min)
		if err != nil {
			return nil, err
		}
		hi, err := point(g.Box.Max)
		if err != nil {
			return nil, err
		}
		return overlay.NewBox(lo.X, lo.Y, hi.X, hi.Y), nil
	case g.Polygon != nil:
		ext, err := ring(g.Polygon.Exterior)
		if err != nil {
			return nil, err
		}
		p := overlay.Polygon{Exterior: ext}
		for _, coords := range g.Polygon.Interiors {
			hole, err := ring(coords)
			if err != nil {
				return nil, err
			}
			p.Interiors = append(p.Interiors, hole)
		}
		return p, nil
	case g.Ring != nil:
		return ring(g.Ring)
	}
	return nil, errors.New("geometry must have one of box, ring or polygon")
}

func ring(coords [][]float64) (overlay.Ring, error) {
	r := make(overlay.Ring, 0, len(coords))
	for _, c := range coords {
		p, err := point(c)
		if err != nil {
			return nil, err
		}
		r = append(r, p)
	}
	return r, nil
}

func point(c []float64) (overlay.Point, error) {
	if len(c) != 2 {
		return overlay.Point{}, fmt.Errorf("point needs 2 coordinates, got %d", len(c))
	}
	return overlay.Pt(c[0], c[1]), nil
}
