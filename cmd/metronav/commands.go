package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/metronav/config"
	"github.com/katalvlaran/metronav/interchange"
	"github.com/katalvlaran/metronav/metro"
	"github.com/katalvlaran/metronav/network"
)

func newStationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stations",
		Short: "List every station with its index and code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			names := a.nav.Stations()
			fmt.Fprintln(w, a.style.title.Render(fmt.Sprintf("%s: %d stations", strings.ToUpper(a.name), len(names))))
			for i, name := range names {
				fmt.Fprintf(w, "%3d. %s  %s\n", i+1, a.style.station.Render(name), a.style.code.Render(network.Code(name)))
			}
			return nil
		},
	}
}

func newMapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "Show each station with its neighbors and distances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			g := a.nav.Graph()
			fmt.Fprintln(w, a.style.title.Render(strings.ToUpper(a.name)+" MAP"))
			for _, name := range g.Stations() {
				fmt.Fprintln(w, a.style.station.Render(name))
				nbrs, err := g.NeighborNames(name)
				if err != nil {
					return err
				}
				for _, nbr := range nbrs {
					km, _ := g.Weight(name, nbr)
					fmt.Fprintf(w, "\t%-28s %3d km\n", nbr, km)
				}
			}
			return nil
		},
	}
}

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "distance SRC DST",
		Short:   "Print the shortest distance between two stations in km",
		Args:    cobra.ExactArgs(2),
		Example: `  metronav distance "Yamuna Bank~B" "Rajiv Chowk~BY"` + "\n" + `  metronav --by code distance YB RC`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst, err := a.resolve(args)
			if err != nil {
				return err
			}
			km, err := a.nav.ShortestCost(src, dst, false)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s: %d KM\n",
				a.style.label.Render("SHORTEST DISTANCE"), src, dst, km)
			return nil
		},
	}
}

func newTimeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "time SRC DST",
		Short: "Print the shortest travel time between two stations in minutes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst, err := a.resolve(args)
			if err != nil {
				return err
			}
			sec, err := a.nav.ShortestCost(src, dst, true)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s: %d MINUTES\n",
				a.style.label.Render("SHORTEST TIME"), src, dst, sec/60)
			return nil
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	var useTime, exhaustive bool
	cmd := &cobra.Command{
		Use:   "path SRC DST",
		Short: "Print the best route between two stations with its interchanges",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst, err := a.resolve(args)
			if err != nil {
				return err
			}
			nav := a.nav
			if exhaustive {
				nav, err = metro.New(a.nav.Graph(),
					metro.WithLogger(a.log),
					metro.WithTimeModel(a.nav.TimeModel()),
					metro.WithStrategy(metro.StrategyExhaustive),
				)
				if err != nil {
					return err
				}
			}
			r, err := nav.Route(src, dst, useTime)
			if err != nil {
				return err
			}
			a.printRoute(cmd, r)
			return nil
		},
	}
	cmd.Flags().BoolVar(&useTime, "time", false, "minimize travel time instead of distance")
	cmd.Flags().BoolVar(&exhaustive, "exhaustive", false, "use the exhaustive depth-first search")

	return cmd
}

func (a *app) printRoute(cmd *cobra.Command, r *metro.Route) {
	w := cmd.OutOrStdout()
	s := a.style

	fmt.Fprintf(w, "%s %s\n", s.label.Render("SOURCE STATION:"), r.Source)
	fmt.Fprintf(w, "%s %s\n", s.label.Render("DESTINATION STATION:"), r.Destination)
	if r.UseTime {
		fmt.Fprintf(w, "%s %d MINUTES\n", s.label.Render("TIME:"), r.Total())
	} else {
		fmt.Fprintf(w, "%s %d KM\n", s.label.Render("DISTANCE:"), r.Total())
	}
	fmt.Fprintf(w, "%s %d\n", s.label.Render("NUMBER OF INTERCHANGES:"), r.Interchanges.Count)

	wp := r.Interchanges.Waypoints
	lines := make([]string, 0, len(wp))
	for i, p := range wp {
		p = strings.ReplaceAll(p, interchange.Marker, s.marker.Render(interchange.Marker))
		if i == 0 {
			p = s.marker.Render("START  ==>  ") + p
		}
		if i == len(wp)-1 {
			p += s.marker.Render("  ==>  END")
		}
		lines = append(lines, p)
	}
	fmt.Fprintln(w, s.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

func newNearCmd(a *app) *cobra.Command {
	var stops int
	var line string
	cmd := &cobra.Command{
		Use:   "near STATION",
		Short: "List the stations within a number of stops",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			station, err := network.Resolve(a.nav.Graph(), args[0], a.by)
			if err != nil {
				return err
			}
			res, err := a.nav.Nearby(station, stops, line)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			title := fmt.Sprintf("WITHIN %d STOPS OF %s", stops, station)
			if stops == 0 {
				title = "REACHABLE FROM " + station
			}
			if line != "" {
				title += " ON LINE " + strings.ToUpper(line)
			}
			fmt.Fprintln(w, a.style.title.Render(title))
			for _, s := range res.Order[1:] {
				fmt.Fprintf(w, "%3d  %s\n", res.Stops[s], a.style.station.Render(s))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&stops, "stops", 2, "maximum number of stops (0 = no limit)")
	cmd.Flags().StringVar(&line, "line", "", "ride only stations of this line code")

	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the effective configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the effective configuration to PATH or the user config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				p, err := config.UserPath()
				if err != nil {
					return err
				}
				path = p
			}
			if err := config.Write(a.cfg, path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	})

	return cmd
}
