package commands

import (
	"context"
	"fmt"
	"os"

	"leopardweb-catalog/lib/telemetry"
	"leopardweb-catalog/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var (
	listTerms  bool
	format     string
	outputPath string
	quick      bool
	quiet      bool

	tel telemetry.Telemetry
)

var rootCmd *cobra.Command

func init() {
	rootCmd = newRootCmd()
	rootCmd.Flags().BoolVar(&listTerms, "list-terms", false, "List the terms the registration system publishes and exit.")
	rootCmd.Flags().StringVar(&format, "format", "xlsx", "Output format: xlsx, csv or json.")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default courses_<term>.<format>).")
	rootCmd.Flags().BoolVar(&quick, "quick", false, "Skip the per-course detail fetch (faster, less complete data).")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output.")
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leopardweb [term]",
		Short: "Fetches a term's course catalog from LeopardWeb and writes it to an xlsx, csv or json file.",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			telemetry.InitSlog(quiet)

			var err error
			tel, err = telemetry.SetupFromEnv(cmd.Context(), "leopardweb")
			if err != nil {
				serviceutil.Fatal("failed to setup telemetry", err)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			err := tel.Shutdown(context.Background())
			if err != nil {
				serviceutil.Fatal("failed to shut down telemetry", err)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listTerms {
				runListTerms(cmd.Context())
				return nil
			}
			if len(args) == 0 {
				// a truly bare invocation gets help; asking for a fetch
				// without saying which term is an error
				if cmd.Flags().NFlag() == 0 {
					return cmd.Help()
				}
				return fmt.Errorf("term code is required (or use --list-terms)")
			}
			runFetch(cmd.Context(), args[0])
			return nil
		},
	}
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
