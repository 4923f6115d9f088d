// Azure Architecture Advisor CLI
//
// Usage:
//   azarch recommend --use-case "real-time analytics platform" [options]
//   azarch recommend --requirements req.json --format json
//   azarch serve --port 8080
//   azarch catalog list
//   azarch export --requirements req.json --out report.json
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"azure-architect/api"
	"azure-architect/catalog"
	"azure-architect/decision/recommend"
	"azure-architect/decision/validation"
	"azure-architect/export"
	"azure-architect/pkg/platform"
	"azure-architect/pkg/workload"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	platform.LoadDotenv()

	app := &cli.App{
		Name:    "azarch",
		Usage:   "Azure Architecture Advisor - service recommendations, cost analysis, and diagrams",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"AZARCH_LOG_LEVEL"},
			},
		},

		Before: func(c *cli.Context) error {
			return os.Setenv("LOG_LEVEL", c.String("log-level"))
		},

		Commands: []*cli.Command{
			recommendCommand(),
			serveCommand(),
			catalogCommand(),
			exportCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// RECOMMEND COMMAND
// =============================================================================

func recommendCommand() *cli.Command {
	return &cli.Command{
		Name:  "recommend",
		Usage: "Recommend an Azure architecture for a workload",
		Flags: append(requirementFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json, markdown)",
			},
		),
		Action: runRecommend,
	}
}

func requirementFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "requirements",
			Aliases: []string{"r"},
			Usage:   "Path to requirements JSON file",
		},
		&cli.StringFlag{
			Name:    "use-case",
			Aliases: []string{"u"},
			Usage:   "Use case description",
		},
		&cli.StringFlag{
			Name:    "industry",
			Aliases: []string{"i"},
			Usage:   "Industry (healthcare, financial, government, retail, manufacturing, technology, startup)",
		},
		&cli.StringSliceFlag{
			Name:  "capability",
			Usage: "Required capability (repeatable)",
		},
		&cli.IntFlag{
			Name:  "team-size",
			Usage: "Team size",
		},
		&cli.IntFlag{
			Name:  "users",
			Usage: "Expected users",
		},
		&cli.IntFlag{
			Name:  "data-gb",
			Usage: "Data volume in GB",
		},
	}
}

// loadRequirements merges the requirements file with flag overrides.
func loadRequirements(c *cli.Context) (workload.Requirements, error) {
	var req workload.Requirements

	if path := c.String("requirements"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return req, fmt.Errorf("failed to read requirements file: %w", err)
		}
		if err := json.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("failed to parse requirements file: %w", err)
		}
	}

	if uc := c.String("use-case"); uc != "" {
		req.UseCase = uc
	}
	if industry := c.String("industry"); industry != "" {
		req.Industry = industry
	}
	if caps := c.StringSlice("capability"); len(caps) > 0 {
		if req.Capabilities == nil {
			req.Capabilities = make(map[string]bool, len(caps))
		}
		for _, name := range caps {
			req.Capabilities[name] = true
		}
	}
	if n := c.Int("team-size"); n > 0 {
		req.TeamSize = n
	}
	if n := c.Int("users"); n > 0 {
		req.ExpectedUsers = n
	}
	if n := c.Int("data-gb"); n > 0 {
		req.DataVolumeGB = n
	}

	return req, nil
}

func runRecommend(c *cli.Context) error {
	logger := platform.InitLogger(true)
	defer logger.Sync()

	req, err := loadRequirements(c)
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	engine := recommend.NewEngine(cat, logger)
	report, err := engine.Recommend(context.Background(), req)
	if err != nil {
		return err
	}

	switch c.String("format") {
	case "json":
		return outputJSON(report)
	case "markdown":
		return outputMarkdown(report)
	default:
		return outputTable(report)
	}
}

// =============================================================================
// SERVE COMMAND
// =============================================================================

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Value:   platform.GetEnvInt("AZARCH_PORT", 8080),
				Usage:   "HTTP listen port",
				EnvVars: []string{"AZARCH_PORT"},
			},
			&cli.StringSliceFlag{
				Name:    "cors-origins",
				Usage:   "Allowed CORS origins",
				EnvVars: []string{"AZARCH_CORS_ORIGINS"},
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	logger := platform.InitLogger(false)
	defer logger.Sync()

	cat, err := catalog.Load()
	if err != nil {
		platform.LogFatal(logger, "failed to load catalog", err)
	}
	logger.Info("catalog loaded", zap.Int("services", cat.Len()))

	config := api.DefaultConfig()
	config.Port = c.Int("port")
	if origins := c.StringSlice("cors-origins"); len(origins) > 0 {
		config.CORSOrigins = origins
	}

	server := api.NewServer(cat, logger, config)
	return server.StartWithGracefulShutdown()
}

// =============================================================================
// CATALOG COMMAND
// =============================================================================

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Inspect the service catalog",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List catalog services",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "category",
						Usage: "Filter by category",
					},
				},
				Action: runCatalogList,
			},
			{
				Name:      "show",
				Usage:     "Show one service in detail",
				ArgsUsage: "<service name>",
				Action:    runCatalogShow,
			},
		},
	}
}

func runCatalogList(c *cli.Context) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	services := cat.Services()
	if category := c.String("category"); category != "" {
		services = cat.ByCategory(category)
		if len(services) == 0 {
			return fmt.Errorf("unknown category: %s (known: %s)",
				category, strings.Join(cat.Categories(), ", "))
		}
	}

	fmt.Printf("%-42s %-28s %-10s %s\n", "SERVICE", "CATEGORY", "COST", "IMPORTANCE")
	for _, svc := range services {
		fmt.Printf("%-42s %-28s %-10s %s\n", svc.Name, svc.Category, svc.CostTier, svc.Importance)
	}
	fmt.Printf("\n%d services\n", len(services))
	return nil
}

func runCatalogShow(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("service name is required")
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	svc, ok := cat.ByName(name)
	if !ok {
		return fmt.Errorf("unknown service: %s", name)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(svc)
}

// =============================================================================
// EXPORT COMMAND
// =============================================================================

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Generate a full export bundle (JSON + ARM + Terraform stub)",
		Flags: append(requirementFlags(),
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output file (default: stdout)",
			},
		),
		Action: runExport,
	}
}

func runExport(c *cli.Context) error {
	logger := platform.InitLogger(true)
	defer logger.Sync()

	req, err := loadRequirements(c)
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	engine := recommend.NewEngine(cat, logger)
	report, err := engine.Recommend(context.Background(), req)
	if err != nil {
		return err
	}

	data, err := export.NewManager().JSON(report)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if out := c.String("out"); out != "" {
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Fprintf(os.Stderr, "📦 Export written to %s\n", out)
		return nil
	}

	fmt.Println(string(data))
	return nil
}

// =============================================================================
// OUTPUT FORMATTERS
// =============================================================================

func outputJSON(report *recommend.Report) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func outputTable(report *recommend.Report) error {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║              🏗️  ARCHITECTURE RECOMMENDATION                  ║")
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")
	fmt.Printf("║  Services:              %-38d ║\n", len(report.Services))
	fmt.Printf("║  Monthly Cost:          $%-37s ║\n", report.Cost.TotalMonthly.StringFixed(2))
	fmt.Printf("║  Annual Cost:           $%-37s ║\n", report.Cost.TotalAnnual.StringFixed(2))
	fmt.Printf("║  Compliance Score:      %-38s ║\n", fmt.Sprintf("%.0f%%", report.Validation.ComplianceScore*100))
	fmt.Printf("║  Architecture Type:     %-38s ║\n", report.Diagram.Type)
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")

	fmt.Println("║  TOP SERVICES                                                 ║")
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")
	maxServices := 10
	if len(report.Services) < maxServices {
		maxServices = len(report.Services)
	}
	for i := 0; i < maxServices; i++ {
		svc := report.Services[i]
		name := truncate(svc.Service.Name, 40)
		fmt.Printf("║  %-40s  score %-11d ║\n", name, svc.Score)
	}

	if len(report.Patterns) > 0 {
		fmt.Println("╠══════════════════════════════════════════════════════════════╣")
		fmt.Println("║  DETECTED PATTERNS                                            ║")
		fmt.Println("╠══════════════════════════════════════════════════════════════╣")
		for _, p := range report.Patterns {
			line := fmt.Sprintf("%s (%s)", p.Name, p.Completeness)
			fmt.Printf("║  %-59s ║\n", truncate(line, 59))
		}
	}

	fmt.Println("╚══════════════════════════════════════════════════════════════╝")

	printFindings(report.Validation)

	if report.Validation.HasCriticalGaps() {
		os.Exit(2)
	}
	return nil
}

func printFindings(result validation.Result) {
	if len(result.CriticalGaps) > 0 {
		fmt.Println("\n❌ CRITICAL GAPS")
		for _, gap := range result.CriticalGaps {
			fmt.Printf("   • %s\n", gap)
		}
	}
	if len(result.Warnings) > 0 {
		fmt.Println("\n⚠️  WARNINGS")
		for _, warning := range result.Warnings {
			fmt.Printf("   • %s\n", warning)
		}
	}
	if len(result.Recommendations) > 0 {
		fmt.Println("\n💡 RECOMMENDATIONS")
		for _, rec := range result.Recommendations {
			fmt.Printf("   • %s\n", rec)
		}
	}
	if len(result.CriticalGaps) == 0 && len(result.Warnings) == 0 {
		fmt.Println("\n✅ Architecture validation passed")
	}
}

func outputMarkdown(report *recommend.Report) error {
	fmt.Println("## 🏗️ Architecture Recommendation")
	fmt.Println()
	fmt.Println("| Metric | Value |")
	fmt.Println("|--------|-------|")
	fmt.Printf("| **Services** | %d |\n", len(report.Services))
	fmt.Printf("| **Monthly Cost** | $%s |\n", report.Cost.TotalMonthly.StringFixed(2))
	fmt.Printf("| **Annual Cost** | $%s |\n", report.Cost.TotalAnnual.StringFixed(2))
	fmt.Printf("| **Compliance Score** | %.0f%% |\n", report.Validation.ComplianceScore*100)
	fmt.Printf("| **Architecture Type** | %s |\n", report.Diagram.Type)

	fmt.Println()
	fmt.Println("### 📊 Recommended Services")
	fmt.Println()
	fmt.Println("| Service | Category | Score |")
	fmt.Println("|---------|----------|-------|")
	for _, svc := range report.Services {
		fmt.Printf("| %s | %s | %d |\n", svc.Service.Name, svc.Service.Category, svc.Score)
	}

	if len(report.Patterns) > 0 {
		fmt.Println()
		fmt.Println("### 🧩 Detected Patterns")
		fmt.Println()
		fmt.Println("| Pattern | Completeness | Missing Required |")
		fmt.Println("|---------|--------------|------------------|")
		for _, p := range report.Patterns {
			missing := strings.Join(p.MissingRequired, ", ")
			if missing == "" {
				missing = "-"
			}
			fmt.Printf("| %s | %s | %s |\n", p.Name, p.Completeness, missing)
		}
	}

	fmt.Println()
	fmt.Println("### 🗺️ Architecture Diagram")
	fmt.Println()
	fmt.Println("```mermaid")
	fmt.Println(report.Diagram.Mermaid)
	fmt.Println("```")
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
