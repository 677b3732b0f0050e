package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"
)

// Kind says where a document came from.
type Kind string

const (
	KindText  Kind = "text"
	KindFile  Kind = "file"
	KindURL   Kind = "url"
	KindStdin Kind = "stdin"
)

// Format is the document encoding text was extracted from.
type Format string

const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
)

const (
	DefaultTimeout  = 15 * time.Second
	DefaultMaxBytes = 5 << 20
)

// ErrTooLarge is returned when a document exceeds Input.MaxBytes.
var ErrTooLarge = errors.New("document exceeds size limit")

// Input names one document to load.
type Input struct {
	Kind Kind
	// Value is the literal text, the file path or the URL, per Kind.
	Value string
	// Reader supplies KindStdin content.
	Reader io.Reader

	Timeout  time.Duration
	MaxBytes int64
	// Client fetches URLs; nil uses a client bounded by Timeout.
	Client *http.Client
}

// Document is extracted plain text plus where it came from.
type Document struct {
	Text   string `json:"-"`
	Source string `json:"source"`
	Kind   Kind   `json:"kind"`
	Format Format `json:"format"`
	Bytes  int64  `json:"bytes"`
}

// Load acquires the document described by in and extracts its text.
func Load(ctx context.Context, in Input) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if in.MaxBytes <= 0 {
		in.MaxBytes = DefaultMaxBytes
	}
	if in.Timeout <= 0 {
		in.Timeout = DefaultTimeout
	}

	switch in.Kind {
	case KindText:
		if int64(len(in.Value)) > in.MaxBytes {
			return Document{}, fmt.Errorf("text: %w (%d bytes)", ErrTooLarge, in.MaxBytes)
		}
		return Document{Text: in.Value, Source: "text", Kind: KindText, Format: FormatText, Bytes: int64(len(in.Value))}, nil
	case KindFile:
		return loadFile(ctx, in)
	case KindURL:
		return loadURL(ctx, in)
	case KindStdin:
		if in.Reader == nil {
			return Document{}, errors.New("stdin: no reader")
		}
		data, err := readLimited(in.Reader, in.MaxBytes)
		if err != nil {
			return Document{}, fmt.Errorf("stdin: %w", err)
		}
		return extract(ctx, data, sniff(data, ""), "stdin", KindStdin)
	default:
		return Document{}, fmt.Errorf("unknown input kind %q", in.Kind)
	}
}

func loadFile(ctx context.Context, in Input) (Document, error) {
	info, err := os.Stat(in.Value)
	if err != nil {
		return Document{}, err
	}
	if info.IsDir() {
		return Document{}, fmt.Errorf("%s is a directory", in.Value)
	}
	if info.Size() > in.MaxBytes {
		return Document{}, fmt.Errorf("%s: %w (%d > %d bytes)", in.Value, ErrTooLarge, info.Size(), in.MaxBytes)
	}

	data, err := os.ReadFile(in.Value)
	if err != nil {
		return Document{}, err
	}
	return extract(ctx, data, sniff(data, formatFromExt(in.Value)), in.Value, KindFile)
}

func loadURL(ctx context.Context, in Input) (Document, error) {
	u, err := url.Parse(in.Value)
	if err != nil {
		return Document{}, fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Document{}, fmt.Errorf("unsupported URL scheme %q (expected http or https)", u.Scheme)
	}

	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Document{}, err
	}
	req.Header.Set("User-Agent", "neocompliance")
	req.Header.Set("Accept", "text/html, text/plain, application/pdf;q=0.9, */*;q=0.5")

	client := in.Client
	if client == nil {
		client = &http.Client{Timeout: in.Timeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("failed to fetch %s: %w", u.Redacted(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Document{}, fmt.Errorf("failed to fetch %s: %s", u.Redacted(), resp.Status)
	}
	if resp.ContentLength > in.MaxBytes {
		return Document{}, fmt.Errorf("%s: %w (%d > %d bytes)", u.Redacted(), ErrTooLarge, resp.ContentLength, in.MaxBytes)
	}

	data, err := readLimited(resp.Body, in.MaxBytes)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", u.Redacted(), err)
	}

	format := formatFromContentType(resp.Header.Get("Content-Type"))
	if format == "" {
		format = formatFromExt(u.Path)
	}
	return extract(ctx, data, sniff(data, format), u.Redacted(), KindURL)
}

func extract(ctx context.Context, data []byte, format Format, src string, kind Kind) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	var (
		text string
		err  error
	)
	switch format {
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatDOCX:
		text, err = extractDOCX(data)
	case FormatHTML:
		text, err = extractHTML(data)
	default:
		format = FormatText
		text = string(data)
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to extract %s text from %s: %w", format, src, err)
	}
	return Document{Text: text, Source: src, Kind: kind, Format: format, Bytes: int64(len(data))}, nil
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, limit)
	}
	return data, nil
}

func formatFromExt(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	case ".txt", ".md", ".markdown", ".text":
		return FormatText
	}
	return ""
}

func formatFromContentType(ct string) Format {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	switch mt {
	case "application/pdf":
		return FormatPDF
	case mimeDOCX:
		return FormatDOCX
	case "text/html", "application/xhtml+xml":
		return FormatHTML
	case "text/plain", "text/markdown":
		return FormatText
	}
	return ""
}

// sniff trusts a known hint and otherwise inspects the leading bytes.
func sniff(data []byte, hint Format) Format {
	if hint != "" {
		return hint
	}
	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return FormatPDF
	case bytes.HasPrefix(data, []byte("PK\x03\x04")) && isDOCX(data):
		return FormatDOCX
	}
	head := strings.ToLower(string(data[:min(len(data), 512)]))
	if strings.Contains(head, "<!doctype html") || strings.Contains(head, "<html") {
		return FormatHTML
	}
	return FormatText
}

// StdinIsPiped reports whether f is a pipe or file rather than a terminal.
func StdinIsPiped(f *os.File) bool {
	return f != nil && !term.IsTerminal(int(f.Fd()))
}
