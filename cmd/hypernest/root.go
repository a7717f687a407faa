// SPDX-License-Identifier: MIT
//
// File: root.go
// Role: Root command, shared flags, configuration and dataset loading.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hypernest/adapter"
	"github.com/katalvlaran/hypernest/config"
	"github.com/katalvlaran/hypernest/converters"
	"github.com/katalvlaran/hypernest/hypergraph"
	"github.com/katalvlaran/hypernest/ingest"
	"github.com/katalvlaran/hypernest/internal/logger"
)

// Representations accepted by --representation.
const (
	reprHypergraph = "hypergraph"
	reprHetNet     = "hetnet"
	reprEntity     = "entity"
)

var errNoData = errors.New("hypernest: --data is required")

// app carries flag values and per-run state shared by all subcommands.
type app struct {
	cfgPath  string
	envFile  string
	dataPath string
	nodeCols []string
	edgeCols []string
	featCols []string
	graphID  string

	cfg     *config.Config
	log     *zap.Logger
	session string
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "hypernest",
		Short: "Hypergraph construction and path search over tabular data",
		Long: `hypernest loads a dataset (YAML with inline rows, or CSV plus column flags),
builds a hypergraph from it and prints the requested view as JSON on stdout.
Logs go to stderr.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { logger.Sync(a.log) },
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "dotenv file with HYPERNEST_* overrides")
	pf.StringVarP(&a.dataPath, "data", "d", "", "dataset file (.yaml/.yml or .csv)")
	pf.StringSliceVar(&a.nodeCols, "nodes", nil, "node identifier columns (CSV input, overrides YAML)")
	pf.StringSliceVar(&a.edgeCols, "edges", nil, "hyperedge columns (CSV input, overrides YAML)")
	pf.StringSliceVar(&a.featCols, "features", nil, "feature columns (overrides YAML)")
	pf.StringVar(&a.graphID, "graph-id", "", "hypergraph ID (default: dataset value or file name)")

	root.AddCommand(
		a.matrixCmd(),
		a.shortestCmd(),
		a.pathsCmd(),
		a.neighborsCmd(),
		a.partitionCmd(),
		a.nestingCmd(),
	)

	return root
}

// setup loads configuration and builds the session logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath, a.envFile)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.session = uuid.NewString()
	a.log = log.With(zap.String("session", a.session), zap.String("command", cmd.Name()))

	return nil
}

// load reads the dataset named by --data and builds the hypergraph.
func (a *app) load() (*hypergraph.Hypergraph, error) {
	if a.dataPath == "" {
		return nil, errNoData
	}
	f, err := os.Open(a.dataPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		rows []ingest.Record
		spec ingest.Spec
	)
	switch strings.ToLower(filepath.Ext(a.dataPath)) {
	case ".csv":
		if rows, err = ingest.ReadCSV(f); err != nil {
			return nil, err
		}
		spec.GraphID = strings.TrimSuffix(filepath.Base(a.dataPath), filepath.Ext(a.dataPath))
	default:
		ds, err := ingest.DecodeDataset(f)
		if err != nil {
			return nil, err
		}
		rows, spec = ds.Rows, ds.Spec
	}
	a.overrideSpec(&spec)

	h, err := ingest.Build(rows, spec)
	if err != nil {
		return nil, err
	}
	a.log.Info("dataset loaded",
		zap.String("path", a.dataPath),
		zap.String("graph", h.ID),
		zap.Int("rows", len(rows)),
		zap.Int("nodes", h.NodeCount()),
		zap.Int("edges", h.EdgeCount()),
	)

	return h, nil
}

func (a *app) overrideSpec(spec *ingest.Spec) {
	if len(a.nodeCols) > 0 {
		spec.NodeColumns = a.nodeCols
	}
	if len(a.edgeCols) > 0 {
		spec.EdgeColumns = a.edgeCols
	}
	if len(a.featCols) > 0 {
		spec.FeatureColumns = a.featCols
	}
	if a.graphID != "" {
		spec.GraphID = a.graphID
	}
}

// searchGraph is what path commands need from an adapter.
type searchGraph interface {
	adapter.Graph
	adapter.Weighter
}

// view wraps h in the adapter for the requested representation.
func view(h *hypergraph.Hypergraph, repr string) (searchGraph, error) {
	switch repr {
	case reprHypergraph, "":
		return adapter.NewHypergraph(h), nil
	case reprHetNet:
		nw, err := converters.HypergraphToHetNet(h, h.ID)
		if err != nil {
			return nil, err
		}
		return adapter.NewHetNet(nw), nil
	case reprEntity:
		g, err := converters.HypergraphToEntity(h, h.ID)
		if err != nil {
			return nil, err
		}
		return adapter.NewEntityGraph(g), nil
	default:
		return nil, fmt.Errorf("unknown representation %q (want %s, %s or %s)", repr, reprHypergraph, reprHetNet, reprEntity)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
