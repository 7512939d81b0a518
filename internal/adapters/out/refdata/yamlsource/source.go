// Package yamlsource reads delivery reference data from a YAML document, an alternative
// to the spreadsheet workbooks that is easier to review and keep in version control.
//
// Document layout:
//
//	airports:
//	  - name: George Bush Intercontinental
//	    code: IAH
//	    zip: 77032
//	regions:
//	  - key: HOUSTON IAH 77001
//	    zipcodes: [77001, 77002, "77003"]
//
// ZIP codes are kept exactly as written, so unquoted 02134 stays "02134".
package yamlsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"mangoshop/internal/core/domain/model/coverage"

	"gopkg.in/yaml.v3"
)

type document struct {
	Airports []airport `yaml:"airports"`
	Regions  []region  `yaml:"regions"`
}

type airport struct {
	Name string     `yaml:"name"`
	Code string     `yaml:"code"`
	Zip  scalarText `yaml:"zip"`
}

type region struct {
	Key      string       `yaml:"key"`
	Zipcodes []scalarText `yaml:"zipcodes"`
}

// scalarText captures the literal text of a scalar, whatever YAML type it resolves to.
type scalarText string

func (s *scalarText) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", value.Line)
	}
	*s = scalarText(value.Value)
	return nil
}

// Source is a YAML reference data file. It serves as an AirportSource, a CoverageSource,
// or both.
type Source struct {
	path string
}

func New(path string) *Source {
	return &Source{path: path}
}

func (s *Source) LoadAirports(ctx context.Context) ([]coverage.AirportRow, error) {
	doc, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]coverage.AirportRow, 0, len(doc.Airports))
	for _, a := range doc.Airports {
		rows = append(rows, coverage.AirportRow{Name: a.Name, Code: a.Code, Zip: string(a.Zip)})
	}
	return rows, nil
}

func (s *Source) LoadRegionTables(ctx context.Context) ([]coverage.RegionTable, error) {
	doc, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	tables := make([]coverage.RegionTable, 0, len(doc.Regions))
	for _, r := range doc.Regions {
		rows := make([][]string, 0, len(r.Zipcodes))
		for _, zip := range r.Zipcodes {
			rows = append(rows, []string{string(zip)})
		}
		tables = append(tables, coverage.RegionTable{Key: r.Key, Rows: rows})
	}
	return tables, nil
}

func (s *Source) read(ctx context.Context) (document, error) {
	if err := ctx.Err(); err != nil {
		return document{}, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return document{}, fmt.Errorf("open reference data %s: %w", s.path, err)
	}
	defer f.Close()

	var doc document
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return document{}, fmt.Errorf("reference data %s is empty", s.path)
		}
		return document{}, fmt.Errorf("decode reference data %s: %w", s.path, err)
	}
	return doc, nil
}
