package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"

	"github.com/salaryscope/salaryscope/internal/analyzer"
	"github.com/salaryscope/salaryscope/internal/config"
	"github.com/salaryscope/salaryscope/internal/dataset"
	"github.com/salaryscope/salaryscope/internal/export"
	"github.com/salaryscope/salaryscope/internal/models"
	"github.com/salaryscope/salaryscope/internal/ui"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "salaryscope",
		Usage: "Analyze a CSV dataset of job postings: salary statistics, rankings and charts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to the job postings CSV",
			},
			&cli.StringFlag{
				Name:  "env",
				Usage: "Path to a .env file with SALARYSCOPE_* settings",
			},
			&cli.BoolFlag{
				Name:    "silence",
				Aliases: []string{"s"},
				Usage:   "Silence the banner",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "Show a progress bar while the dataset loads",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Commands: []*cli.Command{
			statsCommand(),
			topCommand(),
			richestCommand(),
			growthCommand(),
			experienceCommand(),
			chartCommand(),
			exportCommand(),
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Overall salary statistics (min/max/mean/median)",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, _, err := loadAnalyzer(cmd)
			if err != nil {
				return err
			}
			table, err := a.SalaryStatsTable()
			if err != nil {
				return err
			}
			return ui.RenderSummaryTable(table)
		},
	}
}

func topCommand() *cli.Command {
	return &cli.Command{
		Name:  "top",
		Usage: "Most frequent job titles",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "n",
				Aliases: []string{"count"},
				Usage:   "How many titles to show (default from config)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, cfg, err := loadAnalyzer(cmd)
			if err != nil {
				return err
			}
			table, err := a.TopProfessionsTable(topN(cmd, cfg))
			if err != nil {
				return err
			}
			return ui.RenderSummaryTable(table)
		},
	}
}

func richestCommand() *cli.Command {
	return &cli.Command{
		Name:  "richest",
		Usage: "The single highest-paid posting",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, _, err := loadAnalyzer(cmd)
			if err != nil {
				return err
			}
			table, err := a.RichestJobTable()
			if err != nil {
				return err
			}
			return ui.RenderSummaryTable(table)
		},
	}
}

func growthCommand() *cli.Command {
	return &cli.Command{
		Name:  "growth",
		Usage: "Mean salary by experience level for one job title",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "title",
				Aliases:  []string{"t"},
				Usage:    "Exact job title to analyze",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, _, err := loadAnalyzer(cmd)
			if err != nil {
				return err
			}
			table, err := a.SalaryGrowthTable(cmd.String("title"))
			if err != nil {
				return err
			}
			return ui.RenderSummaryTable(table)
		},
	}
}

func experienceCommand() *cli.Command {
	return &cli.Command{
		Name:  "experience",
		Usage: "Mean salary by experience level across the whole dataset",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, _, err := loadAnalyzer(cmd)
			if err != nil {
				return err
			}
			return ui.RenderSummaryTable(a.ExperienceStatsTable())
		},
	}
}

func chartCommand() *cli.Command {
	return &cli.Command{
		Name:  "chart",
		Usage: "Draw terminal charts",
		Commands: []*cli.Command{
			{
				Name:  "histogram",
				Usage: "Salary distribution histogram",
				Flags: []cli.Flag{
					&cli.FloatFlag{
						Name:  "bin-width",
						Usage: "Histogram bin width in USD (0 = automatic)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					a, _, err := loadAnalyzer(cmd)
					if err != nil {
						return err
					}
					bins, err := a.SalaryHistogram(cmd.Float("bin-width"))
					if err != nil {
						return err
					}
					return ui.RenderHistogram(bins)
				},
			},
			{
				Name:  "top",
				Usage: "Bar chart of the most frequent job titles",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "n", Usage: "How many titles to show"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					a, cfg, err := loadAnalyzer(cmd)
					if err != nil {
						return err
					}
					n := topN(cmd, cfg)
					points, err := a.TopProfessionsChart(n)
					if err != nil {
						return err
					}
					return ui.RenderBarChart(fmt.Sprintf("Top-%d Job Titles", len(points)), points)
				},
			},
			{
				Name:  "experience",
				Usage: "Bar chart of mean salary per experience level",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					a, _, err := loadAnalyzer(cmd)
					if err != nil {
						return err
					}
					return ui.RenderBarChart("Average Salary by Experience Level", a.ExperienceChart())
				},
			},
			{
				Name:  "box",
				Usage: "Five-number salary summary for the top job titles",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "n", Usage: "How many titles to include"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					a, cfg, err := loadAnalyzer(cmd)
					if err != nil {
						return err
					}
					plots, err := a.SalaryBoxPlots(topN(cmd, cfg))
					if err != nil {
						return err
					}
					return ui.RenderBoxPlots(plots)
				},
			},
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write all summary tables to disk",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: csv or xlsx",
				Value: "csv",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Output directory (default from config)",
			},
			&cli.IntFlag{
				Name:  "n",
				Usage: "How many top titles to include",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, cfg, err := loadAnalyzer(cmd)
			if err != nil {
				return err
			}

			outDir := cmd.String("out")
			if outDir == "" {
				outDir = cfg.OutputDir
			}

			tables, err := summaryTables(a, topN(cmd, cfg))
			if err != nil {
				return err
			}

			switch cmd.String("format") {
			case "csv":
				writer := export.NewCSVWriter()
				names := []string{"salary_stats.csv", "top_titles.csv", "richest_job.csv", "experience_stats.csv"}
				for i, table := range tables {
					path := filepath.Join(outDir, names[i])
					if err := writer.WriteSummary(path, table); err != nil {
						return err
					}
					pterm.Success.Printfln("wrote %s", path)
				}
				return nil
			case "xlsx":
				path := filepath.Join(outDir, "salaryscope_report.xlsx")
				if err := export.WriteWorkbook(path, tables); err != nil {
					return err
				}
				pterm.Success.Printfln("wrote %s", path)
				return nil
			default:
				return fmt.Errorf("unknown export format %q, must be csv or xlsx", cmd.String("format"))
			}
		},
	}
}

// summaryTables collects every summary in a fixed order for export.
func summaryTables(a *analyzer.Analyzer, n int) ([]models.SummaryTable, error) {
	stats, err := a.SalaryStatsTable()
	if err != nil {
		return nil, err
	}
	top, err := a.TopProfessionsTable(n)
	if err != nil {
		return nil, err
	}
	richest, err := a.RichestJobTable()
	if err != nil {
		return nil, err
	}
	return []models.SummaryTable{stats, top, richest, a.ExperienceStatsTable()}, nil
}

// loadAnalyzer wires config, logging and the dataset for a subcommand.
func loadAnalyzer(cmd *cli.Command) (*analyzer.Analyzer, config.Config, error) {
	cfg, err := config.Load(cmd.String("env"))
	if err != nil {
		return nil, cfg, err
	}

	level := slog.LevelInfo
	if cmd.Bool("debug") || cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if cmd.Bool("no-color") || cfg.NoColor {
		pterm.DisableColor()
	}

	ui.PrintBanner(cmd.Bool("silence"))

	path := cmd.String("file")
	if path == "" {
		path = cfg.DatasetPath
	}
	if path == "" {
		return nil, cfg, fmt.Errorf("no dataset given: pass --file or set SALARYSCOPE_DATASET")
	}

	var opts []dataset.Option
	if cmd.Bool("progress") {
		opts = append(opts, dataset.WithProgress())
	}
	ds, err := dataset.Load(path, opts...)
	if err != nil {
		return nil, cfg, err
	}

	return analyzer.New(ds), cfg, nil
}

func topN(cmd *cli.Command, cfg config.Config) int {
	if n := cmd.Int("n"); n > 0 {
		return int(n)
	}
	return cfg.TopN
}
