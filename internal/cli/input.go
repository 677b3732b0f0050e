package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/neocompliance/neocompliance/internal/config"
	"github.com/neocompliance/neocompliance/internal/source"
	"github.com/neocompliance/neocompliance/internal/unicode"
)

// inputFlags are the document selection flags shared by analyze and detect.
type inputFlags struct {
	text string
	file string
	url  string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.text, "text", "", "Analyze this text")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Analyze a .txt, .md, .pdf, .docx or .html file")
	cmd.Flags().StringVar(&f.url, "url", "", "Fetch and analyze a web page or document URL")
}

func (f *inputFlags) reset() {
	*f = inputFlags{}
}

// resolve turns flags, an optional positional path and piped stdin into a
// source.Input. Exactly one input must be given.
func (f *inputFlags) resolve(cmd *cobra.Command, args []string, cfg *config.Config) (source.Input, error) {
	in := source.Input{Timeout: cfg.Source.Timeout, MaxBytes: cfg.Source.MaxBytes}

	given := 0
	for _, v := range []string{f.text, f.file, f.url} {
		if v != "" {
			given++
		}
	}
	given += len(args)
	if given > 1 {
		return in, errors.New("give only one of --text, --file, --url or a file argument")
	}

	switch {
	case f.text != "":
		in.Kind, in.Value = source.KindText, f.text
	case f.file != "":
		in.Kind, in.Value = source.KindFile, f.file
	case f.url != "":
		in.Kind, in.Value = source.KindURL, f.url
	case len(args) == 1 && args[0] != "-":
		in.Kind, in.Value = source.KindFile, args[0]
	default:
		r, piped := stdin(cmd)
		if !piped && len(args) == 0 {
			return in, errors.New("no input: use --text, --file, --url or pipe text on stdin")
		}
		in.Kind, in.Reader = source.KindStdin, r
	}
	return in, nil
}

func stdin(cmd *cobra.Command) (io.Reader, bool) {
	r := cmd.InOrStdin()
	if f, ok := r.(*os.File); ok {
		return r, source.StdinIsPiped(f)
	}
	return r, true
}

// loadDocument loads the selected input and strips hidden characters from it.
func loadDocument(cmd *cobra.Command, in source.Input, log *zap.Logger) (source.Document, unicode.ScanResult, error) {
	doc, err := source.Load(cmd.Context(), in)
	if err != nil {
		return doc, unicode.ScanResult{}, fmt.Errorf("failed to load document: %w", err)
	}

	scan := unicode.Scan(doc.Text)
	if !scan.Clean {
		log.Warn("hidden characters normalized before analysis",
			zap.String("source", doc.Source),
			zap.Int("removed", scan.Removed),
			zap.Int("replaced", scan.Replaced),
			zap.Strings("kinds", scan.Kinds()),
		)
	}
	if strings.TrimSpace(scan.Sanitized) == "" {
		return doc, scan, fmt.Errorf("%s contains no text to analyze", doc.Source)
	}
	log.Debug("document loaded",
		zap.String("source", doc.Source),
		zap.String("kind", string(doc.Kind)),
		zap.String("format", string(doc.Format)),
		zap.Int64("bytes", doc.Bytes),
	)
	return doc, scan, nil
}
