package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vrsandeep/mango-reader/internal/config"
	"github.com/vrsandeep/mango-reader/internal/library"
)

// Options holds the global flags shared by every command.
type Options struct {
	Root         string
	SettingsPath string
	JSON         bool
}

// settings opens the reader settings, from --settings or config.yml.
func (o *Options) settings() (*config.SettingsStore, error) {
	if o.SettingsPath != "" {
		return config.NewSettingsStore(o.SettingsPath, "./manga")
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return config.NewSettingsStore(cfg.Settings.Path, cfg.Library.Path)
}

// root returns --root if given, otherwise the active root.
func (o *Options) root() (string, error) {
	if o.Root != "" {
		return o.Root, nil
	}
	s, err := o.settings()
	if err != nil {
		return "", err
	}
	return s.ActiveRoot(), nil
}

func (o *Options) printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:          "mango-cli",
		Short:        "Browse a manga directory tree from the terminal",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.Root, "root", "", "Library root to use instead of the active one")
	rootCmd.PersistentFlags().StringVar(&opts.SettingsPath, "settings", "", "Reader settings file (default: from config.yml)")
	rootCmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "Print results as JSON")

	rootCmd.AddCommand(
		newLsCmd(opts),
		newImagesCmd(opts),
		newNeighborsCmd(opts),
		newRootsCmd(opts),
		newUseCmd(opts),
	)
	return rootCmd
}

func newLsCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [path]",
		Short: "List the collections and chapters under a path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.root()
			if err != nil {
				return err
			}
			var rel string
			if len(args) == 1 {
				rel = args[0]
			}
			entries, err := library.ListChildren(root, rel)
			if err != nil {
				return err
			}
			if opts.JSON {
				return opts.printJSON(cmd.OutOrStdout(), entries)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tIMAGES\tPATH")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", e.Type, e.ImageCount, e.Path)
			}
			return tw.Flush()
		},
	}
}

func newImagesCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "images <chapter>",
		Short: "Print the pages of a chapter in reading order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.root()
			if err != nil {
				return err
			}
			images, err := library.ListImages(root, args[0])
			if err != nil {
				return err
			}
			if opts.JSON {
				return opts.printJSON(cmd.OutOrStdout(), images)
			}
			for _, name := range images {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newNeighborsCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <chapter>",
		Short: "Show the previous and next chapter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.root()
			if err != nil {
				return err
			}
			adj := library.Adjacent(root, args[0])
			if opts.JSON {
				return opts.printJSON(cmd.OutOrStdout(), adj)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "previous: %s\nnext: %s\n", orNone(adj.Previous), orNone(adj.Next))
			return nil
		},
	}
}

func newRootsCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "roots",
		Short: "List the registered library roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.settings()
			if err != nil {
				return err
			}
			current := s.Get()
			if opts.JSON {
				return opts.printJSON(cmd.OutOrStdout(), current)
			}
			for _, p := range current.BasePaths {
				marker := " "
				if p == current.CurrentBasePath {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, p)
			}
			return nil
		},
	}
}

func newUseCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "use <root>",
		Short: "Make a directory the active library root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.settings()
			if err != nil {
				return err
			}
			if _, err := s.Use(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active root: %s\n", args[0])
			return nil
		},
	}
}

func orNone(p *string) string {
	if p == nil {
		return "-"
	}
	return *p
}
