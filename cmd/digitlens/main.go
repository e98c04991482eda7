package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"digitlens/adapters/excel"
	"digitlens/adapters/postgres"
	"digitlens/app"
	"digitlens/internal"
	"digitlens/internal/config"
	"digitlens/internal/errors"
	"digitlens/internal/render"
	"digitlens/internal/testkit"
	"digitlens/ports"
	"digitlens/ui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env file if present (ignore error if it doesn't exist)
	if err := godotenv.Load(); err != nil {
		internal.DefaultLogger.Debug("No .env file found, using system environment")
	}

	analyzeCmd := newAnalyzeCmd()

	rootCmd := &cobra.Command{
		Use:   "digitlens",
		Short: "Benford first-digit conformity analysis for journal-entry audit triage",
		Long: `digitlens compares the leading-digit distribution of a set of financial
amounts against Benford's law and publishes a report with two charts.

Run with no arguments to analyze the configured input file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          analyzeCmd.RunE,
	}
	rootCmd.Flags().AddFlagSet(analyzeCmd.Flags())

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newGenCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.GetCode(err) == errors.CodeConfigInvalid {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var input string
	var sheet string
	var columns string
	var outDir string
	var dsn string
	var query string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the first-digit analysis and publish the report artifacts",
		Long: `Load amounts from the configured tabular source, tabulate their leading
digits against the Benford distribution and publish the Markdown report,
the HTML report, both SVG charts and the run manifest.

Defaults come from the environment (INPUT_FILE, SHEET_NAME, AMOUNT_COLUMNS,
OUTPUT_DIR, DATABASE_URL, AMOUNT_QUERY); flags override.

Example: digitlens analyze --input je_samples.xlsx --out output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("input") {
				cfg.Input.File = input
			}
			if cmd.Flags().Changed("sheet") {
				cfg.Input.Sheet = sheet
			}
			if cmd.Flags().Changed("columns") {
				cfg.Input.AmountColumns = config.SplitColumns(columns)
				if len(cfg.Input.AmountColumns) == 0 {
					return errors.ConfigInvalid("at least one amount column is required")
				}
			}
			if cmd.Flags().Changed("out") {
				cfg.Output.Dir = outDir
			}
			if cmd.Flags().Changed("dsn") {
				cfg.Database.URL = dsn
			}
			if cmd.Flags().Changed("query") {
				cfg.Database.Query = query
			}
			if cfg.Database.URL != "" && cfg.Database.Query == "" {
				return errors.ConfigInvalid("--query is required when --dsn is set")
			}
			return runAnalyze(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&input, "input", config.DefaultInputFile, "input XLSX or CSV file")
	cmd.Flags().StringVar(&sheet, "sheet", config.DefaultSheet, "worksheet name for XLSX input")
	cmd.Flags().StringVar(&columns, "columns", config.DefaultAmountColumns, "amount column preference list, comma-separated")
	cmd.Flags().StringVar(&outDir, "out", config.DefaultOutputDir, "output directory for report artifacts")
	cmd.Flags().StringVar(&dsn, "dsn", "", "Postgres DSN; load amounts from a query instead of a file")
	cmd.Flags().StringVar(&query, "query", "", "SQL query returning a single numeric amount column")

	return cmd
}

func runAnalyze(cmd *cobra.Command, cfg *config.Config) error {
	logger := internal.DefaultLogger

	var source ports.AmountSource
	if cfg.UseDatabase() {
		pg, err := postgres.Open(cfg.Database.URL, cfg.Database.Query)
		if err != nil {
			return err
		}
		defer pg.Close()
		source = pg
	} else {
		source = excel.NewFileSource(cfg.Input.File, cfg.Input.Sheet, cfg.Input.AmountColumns)
	}

	pipeline := app.NewPipeline(source, render.NewRenderer(cfg.Output.Dir), logger)
	result, err := pipeline.Run(cmd.Context())
	if err != nil {
		return err
	}

	summary := result.Manifest.Result.Summary
	fmt.Printf("Analyzed %d amounts in %dms\n", summary.TotalCount, result.RuntimeMs)
	fmt.Printf("MAD %.4f (%s), chi-square %.2f\n", summary.MAD, result.Manifest.Conformity, summary.ChiSquare)
	for _, path := range result.Published {
		fmt.Printf("  %s\n", path)
	}
	return nil
}

func newGenCmd() *cobra.Command {
	var out string
	var format string
	var rows int
	var seed int64
	var start string
	var minExp, maxExp float64
	var skewDigit int
	var skewShare float64

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a deterministic synthetic journal-entry dataset",
		Long: `Write a seeded synthetic journal with Benford-conforming amounts for
testing the analyzer end to end. --skew-digit/--skew-share plant a
digit-heavy block to simulate a manipulated ledger.

Example: digitlens gen --out je_samples.xlsx --rows 5000 --skew-digit 9 --skew-share 0.3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.ParseInLocation("2006-01-02", start, time.UTC)
			if err != nil {
				return errors.ConfigInvalid(fmt.Sprintf("invalid --start (expected YYYY-MM-DD): %v", err))
			}

			fmtName := strings.ToLower(strings.TrimSpace(format))
			if fmtName == "" {
				if strings.ToLower(filepath.Ext(out)) == ".csv" {
					fmtName = "csv"
				} else {
					fmtName = "xlsx"
				}
			}

			gen := testkit.DefaultConfig()
			gen.Rows = rows
			gen.Seed = seed
			gen.StartDate = startDate
			gen.MinExp = minExp
			gen.MaxExp = maxExp
			gen.SkewDigit = skewDigit
			gen.SkewShare = skewShare

			ds, err := testkit.Generate(gen)
			if err != nil {
				return errors.ConfigInvalid(err.Error())
			}

			switch fmtName {
			case "csv":
				err = testkit.WriteCSV(out, ds)
			case "xlsx":
				err = testkit.WriteXLSX(out, ds)
			default:
				return errors.ConfigInvalid("unsupported format: " + fmtName)
			}
			if err != nil {
				return errors.Wrapf(err, "cannot write %s", out)
			}

			fmt.Printf("Synthetic journal written: %s (%d rows)\n", out, len(ds.Rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", config.DefaultInputFile, "output file path")
	cmd.Flags().StringVar(&format, "format", "", "output format: xlsx or csv (default inferred from --out)")
	cmd.Flags().IntVar(&rows, "rows", 2000, "number of journal rows")
	cmd.Flags().Int64Var(&seed, "seed", 42, "RNG seed (deterministic)")
	cmd.Flags().StringVar(&start, "start", "2025-01-01", "first posting date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&minExp, "min-exp", 0, "lower bound of the magnitude range, as a power of ten")
	cmd.Flags().Float64Var(&maxExp, "max-exp", 5, "upper bound of the magnitude range, as a power of ten")
	cmd.Flags().IntVar(&skewDigit, "skew-digit", 0, "leading digit to over-represent (0 disables)")
	cmd.Flags().Float64Var(&skewShare, "skew-share", 0, "fraction of rows forced to the skew digit")

	return cmd
}

func newServeCmd() *cobra.Command {
	var port string
	var outDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the published report artifacts for local review",
		Long: `Start a local HTTP server over the output directory so auditors can
browse the HTML report and charts.

Example: digitlens serve --port 8080 --out output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("out") {
				cfg.Output.Dir = outDir
			}

			server := ui.NewApp(ui.Config{Port: cfg.Server.Port, OutputDir: cfg.Output.Dir})
			return server.Start(cfg.Server.Port)
		},
	}

	cmd.Flags().StringVar(&port, "port", config.DefaultPort, "listen port")
	cmd.Flags().StringVar(&outDir, "out", config.DefaultOutputDir, "output directory to serve")

	return cmd
}
