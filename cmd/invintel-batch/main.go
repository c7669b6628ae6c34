package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paperfold/invoice-intel/internal/analysis"
	"github.com/paperfold/invoice-intel/internal/export"
	"github.com/paperfold/invoice-intel/internal/logging"
)

// invintel-batch analyzes a directory of pre-extracted .txt documents and
// writes the results to an XLSX workbook.
func main() {
	var (
		inDir        = flag.String("in", "", "directory of .txt files with extracted document text")
		outFile      = flag.String("out", "analyses.xlsx", "output XLSX path")
		rulesPath    = flag.String("rules", "", "optional YAML rules file")
		jurisdiction = flag.String("jurisdiction", "", "explicit jurisdiction (EU, UAE, KSA)")
		companyName  = flag.String("company", "", "caller's company name, used for payer/payee direction")
		logLevel     = flag.String("log-level", "info", "log level")
	)
	flag.Parse()

	logger := logging.NewJSONLogger("invintel-batch", *logLevel)
	if *inDir == "" {
		fmt.Fprintln(os.Stderr, "usage: invintel-batch -in <dir> [-out analyses.xlsx] [-rules rules.yaml]")
		os.Exit(2)
	}

	rules := analysis.DefaultRules()
	if *rulesPath != "" {
		loaded, err := analysis.LoadRules(*rulesPath)
		if err != nil {
			logger.Error("loading rules file", "path", *rulesPath, "err", err)
			os.Exit(1)
		}
		rules = loaded
	}

	entries, err := os.ReadDir(*inDir)
	if err != nil {
		logger.Error("reading input directory", "dir", *inDir, "err", err)
		os.Exit(1)
	}

	rows := make([]export.Row, 0, len(entries))
	flagged := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		path := filepath.Join(*inDir, entry.Name())
		text, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable file", "path", path, "err", err)
			continue
		}
		if strings.TrimSpace(string(text)) == "" {
			logger.Warn("skipping empty file", "path", path)
			continue
		}

		result := analysis.Analyze(analysis.Document{
			FileName:     entry.Name(),
			FileType:     "text/plain",
			Text:         string(text),
			Jurisdiction: *jurisdiction,
			CompanyName:  *companyName,
		}, rules)
		if result.IsFlagged {
			flagged++
		}
		rows = append(rows, export.Row{FileName: entry.Name(), Result: result})

		logger.Info("analyze.ok",
			"file", entry.Name(),
			"doc_class", result.DocClass,
			"decision", result.Approval,
			"risk", result.RiskScore,
			"flagged", result.IsFlagged,
		)
	}

	if len(rows) == 0 {
		logger.Error("no analyzable .txt files found", "dir", *inDir)
		os.Exit(1)
	}

	exporter := export.NewService(logger)
	workbook, err := exporter.WorkbookXLSX(rows)
	if err != nil {
		logger.Error("building workbook", "err", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outFile, workbook, 0o644); err != nil {
		logger.Error("writing workbook", "path", *outFile, "err", err)
		os.Exit(1)
	}

	logger.Info("batch.done", "analyzed", len(rows), "flagged", flagged, "out", *outFile)
}
