/*
Advising is an interactive course planner for academic advisors.

It loads a course catalog from a CSV file and lets the operator list the
catalog or look up the details of single courses. Without a sub-command it
starts the interactive menu:

	advising --file Course_Data.csv

Sub-commands work on the loaded catalog non-interactively:

	advising list                   print the catalog in course order
	advising show CSCI300           print details of a course
	advising dot                    write the search tree in Graphviz DOT format
	advising export -o catalog.html write the catalog as an HTML table
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/courseindex"
	"github.com/npillmayer/courseindex/csvload"
	"github.com/npillmayer/courseindex/menu"
	"github.com/npillmayer/courseindex/present"
	"github.com/npillmayer/courseindex/prompt"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

type options struct {
	file        string
	trace       string
	noColor     bool
	plain       bool
	resetOnLoad bool
	verbose     bool
	output      string
}

func main() {
	gtrace.CoreTracer = gologadapter.New()
	if err := newRootCmd(os.Stdin).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader) *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "advising",
		Short: "Course planner for academic advisors",
		Long: `Advising loads a course catalog from a CSV file and lets you browse it.
Each line of the file holds a course identifier, the course name and
the identifiers of the course's prerequisites.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setTraceLevel(opts.trace)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := menu.NewSession(in, cmd.OutOrStdout())
			s.DataFile = opts.file
			s.ResetOnLoad = opts.resetOnLoad
			s.Verbose = opts.verbose
			s.Presenter = opts.presenter()
			return s.Run()
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", menu.DefaultDataFile, "CSV file containing the course catalog")
	flags.StringVar(&opts.trace, "trace", "error", "Trace level (debug, info, error)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Do not color the output")
	flags.BoolVar(&opts.plain, "plain", false, "Plain output without alignment and colors")
	rootCmd.Flags().BoolVar(&opts.resetOnLoad, "reset-on-load", false, "Drop loaded courses before loading again")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Report every line while loading")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the course catalog in course order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return opts.presenter().Catalog(cmd.OutOrStdout(), idx.Enumerate())
		},
	}
	showCmd := &cobra.Command{
		Use:   "show [course-id]",
		Short: "Print the details of a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := prompt.ValidateID(args[0]); err != nil {
				return err
			}
			idx, err := opts.load(cmd)
			if err != nil {
				return err
			}
			course, found := idx.Search(strings.ToUpper(args[0]))
			if !found {
				return fmt.Errorf("course %s does not exist", strings.ToUpper(args[0]))
			}
			return opts.presenter().Course(cmd.OutOrStdout(), course)
		},
	}
	dotCmd := &cobra.Command{
		Use:   "dot",
		Short: "Write the catalog's search tree in Graphviz DOT format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return opts.write(cmd, func(w io.Writer) error {
				return courseindex.Index2Dot(idx, w)
			})
		},
	}
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the course catalog as an HTML table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return opts.write(cmd, func(w io.Writer) error {
				return present.CatalogHTML(w, idx.Enumerate())
			})
		},
	}
	for _, c := range []*cobra.Command{dotCmd, exportCmd} {
		c.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	}
	rootCmd.AddCommand(listCmd, showCmd, dotCmd, exportCmd)
	return rootCmd
}

func setTraceLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	case "error", "":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	return nil
}

// load reads the catalog for a non-interactive sub-command. Malformed lines
// are reported on the command's error stream and skipped, as the menu does.
func (opts *options) load(cmd *cobra.Command) (*courseindex.Index, error) {
	idx := courseindex.New()
	n, err := csvload.LoadFile(opts.file, idx)
	if err != nil {
		if !errors.Is(err, csvload.ErrMalformedRecord) {
			return nil, err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "some lines have been skipped:\n%v\n", err)
	}
	idx.Clean()
	gtrace.CoreTracer.Infof("loaded %d courses from %s", n, opts.file)
	return idx, nil
}

func (opts *options) presenter() menu.Presenter {
	if opts.plain {
		return present.Plain{}
	}
	con := present.NewConsole(nil, 0)
	if opts.noColor {
		con.DisableColor()
	}
	return con
}

// write calls out with the output file given by --output, or with the
// command's output stream if none is given.
func (opts *options) write(cmd *cobra.Command, out func(io.Writer) error) error {
	if opts.output == "" {
		return out(cmd.OutOrStdout())
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := out(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
