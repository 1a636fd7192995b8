package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metronav/config"
	"github.com/katalvlaran/metronav/dijkstra"
	"github.com/katalvlaran/metronav/logging"
	"github.com/katalvlaran/metronav/metro"
	"github.com/katalvlaran/metronav/network"
)

// app carries the state shared by every subcommand. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	cfgFile string

	cfg   *config.Config
	log   *slog.Logger
	name  string
	nav   *metro.Navigator
	by    network.Lookup
	style styles
}

// newRootCmd builds a fresh command tree, so tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "metronav",
		Short: "Route planner for a metro network",
		Long: `metronav finds the shortest distance, the shortest travel time and the
best route between two stations of a metro network, and reports where a
rider changes lines.

Stations are named with their line codes after '~' ("Rajiv Chowk~BY").
They can also be given by code (--by code) or by their position in the
station list (--by index).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	cmd.Version = version

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./metronav.yaml or <user config dir>/metronav/metronav.yaml)")
	pf.String("network", "", "network YAML file (default: embedded Delhi network)")
	pf.String("log-level", "info", `log level ("debug", "info", "warn", "error")`)
	pf.String("log-format", logging.FormatText, `log format ("text", "logfmt", "json")`)
	pf.String("by", string(network.ByName), `station lookup ("name", "code", "index")`)
	pf.String("strategy", string(metro.StrategyDijkstra), `path algorithm ("dijkstra", "exhaustive", "stops")`)
	pf.Int64("dwell", dijkstra.DefaultTime.Dwell, "seconds spent at each station")
	pf.Int64("per-km", dijkstra.DefaultTime.PerKm, "seconds of travel per km")

	cmd.AddCommand(
		newStationsCmd(a),
		newMapCmd(a),
		newDistanceCmd(a),
		newTimeCmd(a),
		newPathCmd(a),
		newNearCmd(a),
		newConfigCmd(a),
	)

	return cmd
}

// setup resolves configuration and builds the logger and the Navigator.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	var n *network.Network
	if cfg.Network == "" {
		n, err = network.DefaultNetwork()
	} else {
		n, err = network.LoadFile(cfg.Network)
	}
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}
	a.name = n.Name

	// Both values were checked by config.Validate.
	strategy, _ := metro.ParseStrategy(cfg.Strategy)
	a.by, _ = network.ParseLookup(cfg.By)

	a.nav, err = metro.New(n.Graph,
		metro.WithLogger(a.log),
		metro.WithTimeModel(cfg.TimeModel()),
		metro.WithStrategy(strategy),
	)
	if err != nil {
		return err
	}
	a.style = newStyles(cmd.OutOrStdout())

	a.log.Debug("network loaded",
		"name", n.Name,
		"stations", n.Graph.StationCount(),
		"connections", n.Graph.EdgeCount(),
		"strategy", string(strategy),
		"time_model", cfg.TimeModel().String(),
	)

	return nil
}

// resolve maps the two positional station arguments to station names.
func (a *app) resolve(args []string) (src, dst string, err error) {
	if src, err = network.Resolve(a.nav.Graph(), args[0], a.by); err != nil {
		return "", "", fmt.Errorf("source: %w", err)
	}
	if dst, err = network.Resolve(a.nav.Graph(), args[1], a.by); err != nil {
		return "", "", fmt.Errorf("destination: %w", err)
	}

	return src, dst, nil
}
