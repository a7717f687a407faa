// SPDX-License-Identifier: MIT
//
// File: decode.go
// Role: CSV and YAML readers producing records for Build.

package ingest

import (
	"encoding/csv"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hypernest/hypergraph"
)

// ReadCSV reads a header row followed by data rows. Cells stay strings;
// numeric strings are still usable as features. Empty cells are stored as
// "" and skipped by Build when used as identifiers.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapf(methodReadCSV, "header: %v: %w", err, ErrDecode)
	}

	var out []Record
	for line := 2; ; line++ {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapf(methodReadCSV, "line %d: %v: %w", line, err, ErrDecode)
		}
		rec := make(Record, len(header))
		for i, name := range header {
			rec[name] = cells[i]
		}
		out = append(out, rec)
	}

	return out, nil
}

// Dataset is a self-contained ingestion document.
//
//	graph_id: demo
//	node_columns: [gene]
//	edge_columns: [pathway]
//	rows:
//	  - {gene: TP53, pathway: apoptosis}
type Dataset struct {
	Spec `yaml:",inline"`
	Rows []Record `yaml:"rows"`
}

// DecodeDataset reads a YAML Dataset.
func DecodeDataset(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := yaml.NewDecoder(r).Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, wrapf(methodDecodeDataset, "%v: %w", err, ErrDecode)
	}

	return &ds, nil
}

// Build runs Build over the dataset's own rows and spec.
func (d *Dataset) Build() (*hypergraph.Hypergraph, error) { return Build(d.Rows, d.Spec) }
