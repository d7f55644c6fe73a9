// Copyright 2025 RAgent Labs
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ragenthq/ragent/internal/config"
	"github.com/ragenthq/ragent/internal/fda"
	"github.com/ragenthq/ragent/internal/logging"
	"github.com/ragenthq/ragent/internal/output"
	"github.com/ragenthq/ragent/pkg/version"
)

// Supported output formats
const (
	formatJSON   = "json"
	formatNDJSON = "ndjson"
)

// newRootCommand builds the root command. The tool has exactly one
// operation, so the product code is a positional argument on the root
// command itself rather than on a subcommand.
func newRootCommand() *cobra.Command {
	var (
		limit      int
		pageSize   int
		format     string
		outputFile string
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "ragent <product_code>",
		Short: "Search FDA 510(k) devices by product code",
		Long: `ragent queries the openFDA 510(k) device database for every submission
matching a product code and prints normalized records.

The product code is FDA's classification code for a device category, for
example LZG. Results are paged through automatically; use --limit to cap
how many records are returned.

Output is a pretty-printed JSON array by default, or newline-delimited
JSON with --format ndjson.`,
		Version:       version.Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelWarn
			if verbose {
				level = logging.LevelDebug
			}
			logging.Setup(logging.Config{Level: level, Pretty: true, Output: cmd.ErrOrStderr()})

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			// Flags win over config; config covers env and file.
			if !cmd.Flags().Changed("page-size") {
				pageSize = cfg.Defaults.PageSize
			}
			if !cmd.Flags().Changed("format") {
				format = cfg.Defaults.OutputFormat
			}
			if format != formatJSON && format != formatNDJSON {
				return fmt.Errorf("invalid format %q: expected %q or %q", format, formatJSON, formatNDJSON)
			}

			client := fda.NewHTTPClient(cfg.API.Endpoint)

			return runSearch(cmd.Context(), client, searchOptions{
				ProductCode: args[0],
				Limit:       limit,
				PageSize:    pageSize,
				Format:      format,
				OutputFile:  outputFile,
				Stdout:      cmd.OutOrStdout(),
				Stderr:      cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of records to return (0 = unlimited)")
	cmd.Flags().IntVar(&pageSize, "page-size", fda.DefaultPageSize, "Records fetched per API call (the API caps pages at 100)")
	cmd.Flags().StringVar(&format, "format", formatJSON, "Output format: json or ndjson")
	cmd.Flags().StringVar(&outputFile, "output", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// searchOptions carries the resolved settings for one search run.
type searchOptions struct {
	ProductCode string
	Limit       int
	PageSize    int
	Format      string
	OutputFile  string
	Stdout      io.Writer
	Stderr      io.Writer
}

// newOutputWriter selects the writer for the requested format and
// destination.
func newOutputWriter(opts searchOptions) (output.OutputWriter, error) {
	if opts.OutputFile == "" {
		if opts.Format == formatNDJSON {
			return output.NewWriter(opts.Stdout), nil
		}
		return output.NewArrayWriter(opts.Stdout), nil
	}

	if opts.Format == formatNDJSON {
		return output.NewFileWriter(opts.OutputFile)
	}
	return output.NewArrayFileWriter(opts.OutputFile)
}

// runSearch drains the pager into the selected writer, stopping once the
// record cap is reached. The cap is checked between pages, so no page
// beyond the last needed one is fetched.
func runSearch(ctx context.Context, client fda.Client, opts searchOptions) error {
	writer, err := newOutputWriter(opts)
	if err != nil {
		return err
	}

	pager := fda.NewPager(client, opts.ProductCode, fda.FetchOptions{PageSize: opts.PageSize})

	// Progress goes to stderr only when stdout isn't carrying the records.
	showProgress := opts.OutputFile != ""

	count := 0
drain:
	for pager.HasMore() {
		page, err := pager.Next(ctx)
		if err != nil {
			// For the buffered array format the partial output is
			// deliberately discarded: an error run prints nothing but
			// the Error: line. NDJSON has already streamed its lines.
			if opts.Format == formatNDJSON {
				_ = writer.Close()
			}
			if showProgress {
				fmt.Fprintf(opts.Stderr, "\r\033[K")
			}
			return err
		}

		for _, record := range page.Records {
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write record: %w", err)
			}
			count++

			if showProgress {
				fmt.Fprintf(opts.Stderr, "\rFetched %d records...", count)
			}

			if opts.Limit > 0 && count >= opts.Limit {
				break drain
			}
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	if showProgress {
		fmt.Fprintf(opts.Stderr, "\r\033[K")
		fmt.Fprintf(opts.Stderr, "Fetched %d records for product code %s\n", count, opts.ProductCode)
	}

	return nil
}
