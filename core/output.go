package core

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
)

// Printer renders analysis results for the CLI.
type Printer struct {
	JSON    bool
	Verbose bool
	Writer  io.Writer
}

// NewPrinter creates a default Printer writing to stdout.
func NewPrinter(jsonMode, verbose bool) *Printer {
	return &Printer{JSON: jsonMode, Verbose: verbose, Writer: os.Stdout}
}

// PrintResult renders an AnalysisResult to the configured output.
func (p *Printer) PrintResult(path string, format FormatID, res *AnalysisResult) {
	if p.JSON {
		p.printJSON(path, format, res)
		return
	}
	p.printText(path, format, res)
}

func (p *Printer) printText(path string, format FormatID, res *AnalysisResult) {
	fmt.Fprintf(p.Writer, "File   : %s\n", path)
	fmt.Fprintf(p.Writer, "Format : %s\n", format)
	fmt.Fprintf(p.Writer, "Score  : %d/10\n", res.IntegrityScore)
	fmt.Fprintf(p.Writer, "Hash   : %s\n", res.NFTMetadata.FileHash)

	ci := res.NFTMetadata.CameraInfo
	if ci.Make != nil || ci.Model != nil || ci.Software != nil {
		fmt.Fprintln(p.Writer)
		fmt.Fprintln(p.Writer, "── Camera ──")
		printField(p.Writer, "Make", ci.Make)
		printField(p.Writer, "Model", ci.Model)
		printField(p.Writer, "Software", ci.Software)
	}

	if len(res.Analysis.Issues) > 0 {
		fmt.Fprintln(p.Writer)
		fmt.Fprintln(p.Writer, "── Issues ──")
		for _, s := range res.Analysis.Issues {
			fmt.Fprintf(p.Writer, "  ✗ %s\n", s)
		}
	}
	if len(res.Analysis.Warnings) > 0 {
		fmt.Fprintln(p.Writer)
		fmt.Fprintln(p.Writer, "── Warnings ──")
		for _, s := range res.Analysis.Warnings {
			fmt.Fprintf(p.Writer, "  ! %s\n", s)
		}
	}

	if b := res.Analysis.Breakdown; b != nil {
		fmt.Fprintln(p.Writer)
		fmt.Fprintln(p.Writer, "── Breakdown ──")
		fmt.Fprintf(p.Writer, "  %-14s %d\n", "software:", b.Software)
		fmt.Fprintf(p.Writer, "  %-14s %d\n", "aiDetection:", b.AIDetection)
		fmt.Fprintf(p.Writer, "  %-14s %d\n", "consistency:", b.Consistency)
		fmt.Fprintf(p.Writer, "  %-14s %d\n", "completeness:", b.Completeness)
		fmt.Fprintf(p.Writer, "  %-14s %d\n", "anomalies:", b.Anomalies)
	}

	if p.Verbose && len(res.FullMetadata) > 0 {
		fmt.Fprintln(p.Writer)
		fmt.Fprintln(p.Writer, "── Extracted tags ──")
		for k, v := range res.FullMetadata {
			fmt.Fprintf(p.Writer, "  %-20s %s\n", k+":", v)
		}
	}
}

func (p *Printer) printJSON(path string, format FormatID, res *AnalysisResult) {
	out := struct {
		File   string          `json:"file"`
		Format FormatID        `json:"format"`
		Result *AnalysisResult `json:"result"`
	}{
		File:   path,
		Format: format,
		Result: res,
	}

	b, err := sonic.ConfigDefault.MarshalIndent(out, "", "  ")
	if err != nil {
		PrintError(err.Error())
		return
	}
	fmt.Fprintln(p.Writer, string(b))
}

func printField(w io.Writer, name string, v *string) {
	if v != nil {
		fmt.Fprintf(w, "  %-10s %s\n", name+":", *v)
	}
}

// PrintInfo prints an info line (suppressed in JSON mode).
func (p *Printer) PrintInfo(msg string) {
	if !p.JSON {
		fmt.Fprintln(p.Writer, msg)
	}
}

// PrintError prints an error to stderr.
func PrintError(msg string) {
	fmt.Fprintln(os.Stderr, "✗ Error: "+msg)
}
