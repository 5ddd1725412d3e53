package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/nps-explorer/internal/config"
	"github.com/spf13/cobra"
)

func newStatesCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "states",
		Short: "List the states in the site directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat()
			if err != nil {
				return err
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}

			dir, err := a.scraper.BuildStateDirectory(cmd.Context())
			if err != nil {
				return fmt.Errorf("building state directory: %w", err)
			}

			return WriteStates(cmd.OutOrStdout(), dir, format)
		},
	}
	addFormatFlag(cmd)
	return cmd
}

func newSitesCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sites <state>",
		Short:   "List the sites of one state",
		Example: "  nps-explorer sites michigan\n  nps-explorer sites new york --format json",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat()
			if err != nil {
				return err
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}

			dir, err := a.scraper.BuildStateDirectory(cmd.Context())
			if err != nil {
				return fmt.Errorf("building state directory: %w", err)
			}

			state := strings.Join(args, " ")
			stateURL, ok := dir.Lookup(state)
			if !ok {
				return fmt.Errorf("unknown state: %s", state)
			}

			sites, err := a.scraper.SitesForState(cmd.Context(), stateURL)
			if err != nil {
				return fmt.Errorf("fetching sites for %s: %w", state, err)
			}

			return WriteSites(cmd.OutOrStdout(), &SitesResult{
				State:     strings.ToLower(strings.TrimSpace(state)),
				CheckedAt: time.Now().UTC(),
				Sites:     sites,
				Count:     len(sites),
			}, format)
		},
	}
	addFormatFlag(cmd)
	return cmd
}

func newNearbyCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "nearby <zipcode>",
		Short: "List places near a zip code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}

			nearby, err := a.places.Nearby(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return WritePlaces(cmd.OutOrStdout(), nearby)
		},
	}
}

func newCacheCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached pages",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached page and the saved state directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}

			removed, err := a.store.Clear()
			if err != nil {
				return fmt.Errorf("clearing cache: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached entries from %s\n", removed, a.store.Dir())
			return nil
		},
	})

	return cmd
}
