package xmldoc2html

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/alnah/go-xmldoc2html/internal/fileutil"
)

// Converter turns XML documentation into a styled HTML page.
// A Converter holds no per-conversion state and may be reused.
type Converter struct {
	title  string
	logger *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithTitle sets the page title and heading. An empty title keeps DefaultTitle.
func WithTitle(title string) Option {
	return func(c *Converter) {
		if title != "" {
			c.title = title
		}
	}
}

// WithLogger sets the logger used for debug diagnostics.
// Panics if l is nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("xmldoc2html: WithLogger logger must not be nil")
	}
	return func(c *Converter) {
		c.logger = l
	}
}

// NewConverter creates a Converter using DefaultTitle and a discarding logger.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		title:  DefaultTitle,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Title returns the title rendered into each page.
func (c *Converter) Title() string {
	return c.title
}

// ConvertFile converts the XML documentation file at inputPath into an HTML
// file at outputPath, replacing any existing file.
//
// Errors wrap ErrInputNotFound, ErrReadInput, ErrParse or ErrWriteOutput.
// The output file is only touched once rendering has succeeded, and is
// replaced atomically.
func ConvertFile(inputPath, outputPath string) (*Result, error) {
	return NewConverter().ConvertFile(inputPath, outputPath)
}

// ConvertFile converts inputPath into an HTML file at outputPath.
// See the package-level ConvertFile for the error contract.
func (c *Converter) ConvertFile(inputPath, outputPath string) (*Result, error) {
	info, err := os.Stat(inputPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	case info.IsDir():
		return nil, fmt.Errorf("%w: %s is a directory", ErrInputNotFound, inputPath)
	}

	data, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	c.logger.Debug("read input", slog.String("path", inputPath), slog.Int("bytes", len(data)))

	result, err := c.Render(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inputPath, err)
	}

	if err := fileutil.WriteFileAtomic(outputPath, []byte(result.HTML)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	c.logger.Debug("wrote output", slog.String("path", outputPath), slog.Int("bytes", len(result.HTML)))

	result.OutputPath = outputPath
	return result, nil
}

// Render parses XML documentation from r and renders it in memory.
// Malformed input, or input without exactly one root element, returns an
// error wrapping ErrParse.
func (c *Converter) Render(r io.Reader) (*Result, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	root, err := documentRoot(doc)
	if err != nil {
		return nil, err
	}

	members := FindMembers(root)
	c.logger.Debug("parsed document", slog.String("root", root.Tag), slog.Int("members", len(members)))

	return &Result{
		HTML:    renderMembers(members, c.title),
		Members: len(members),
	}, nil
}

// documentRoot returns the single root element of doc. Comments, processing
// instructions and whitespace may surround it; a second element or any other
// text at the top level is rejected.
func documentRoot(doc *etree.Document) (*etree.Element, error) {
	for _, tok := range doc.Child {
		if cd, ok := tok.(*etree.CharData); ok && strings.Trim(cd.Data, " \t\r\n\ufeff") != "" {
			return nil, fmt.Errorf("%w: text outside the root element", ErrParse)
		}
	}

	switch n := len(doc.ChildElements()); n {
	case 0:
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	case 1:
		return doc.Root(), nil
	default:
		return nil, fmt.Errorf("%w: %d root elements", ErrParse, n)
	}
}
