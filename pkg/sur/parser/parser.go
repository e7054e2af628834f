package parser

import (
	"fmt"
	"log/slog"
	"os"

	"sargam-hq/surescript/pkg/sur/ast"
	surerrors "sargam-hq/surescript/pkg/sur/errors"
)

// Parser parses SureScript notation into document trees.
// Parsing is lenient: it always produces a document, skipping and
// recording any fragment it cannot place. Only file I/O can fail.
type Parser struct {
	maxFileSize int64        // Maximum file size in bytes (default: 10MB)
	logger      *slog.Logger // Destination for skip diagnostics
}

// NewParser creates a new parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		maxFileSize: 10 * 1024 * 1024, // 10MB
		logger:      slog.Default(),
	}
}

// WithMaxFileSize sets the maximum file size limit for ParseFile.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// WithLogger sets the logger that skip diagnostics are reported to.
// A nil logger falls back to slog.Default().
func (p *Parser) WithLogger(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	p.logger = logger
	return p
}

// Parse parses SureScript source text into a document. It cannot fail;
// malformed fragments are skipped and logged. Use ParseWithDiagnostics
// to also receive the skip records.
func (p *Parser) Parse(source string) *ast.Document {
	doc, _ := p.ParseWithDiagnostics(source)
	return doc
}

// ParseWithDiagnostics parses source text and returns the document
// together with a record of every fragment the parser skipped.
func (p *Parser) ParseWithDiagnostics(source string) (*ast.Document, []surerrors.Diagnostic) {
	return p.parse(source, "")
}

// ParseFile parses the .sur file at the given path. The returned error
// is only ever an I/O failure (missing file, size over limit); the
// parse itself is as lenient as Parse.
func (p *Parser) ParseFile(path string) (*ast.Document, error) {
	doc, _, err := p.ParseFileWithDiagnostics(path)
	return doc, err
}

// ParseFileWithDiagnostics parses a .sur file and returns the skip
// records alongside the document.
func (p *Parser) ParseFileWithDiagnostics(path string) (*ast.Document, []surerrors.Diagnostic, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, &surerrors.Error{
			Type:     surerrors.ErrorTypeIO,
			Message:  fmt.Sprintf("Failed to access file: %v", err),
			Location: ast.Location{File: path},
		}
	}
	if info.Size() > p.maxFileSize {
		return nil, nil, &surerrors.Error{
			Type:     surerrors.ErrorTypeIO,
			Message:  fmt.Sprintf("File size %d exceeds maximum %d bytes", info.Size(), p.maxFileSize),
			Location: ast.Location{File: path},
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &surerrors.Error{
			Type:     surerrors.ErrorTypeIO,
			Message:  fmt.Sprintf("Failed to read file: %v", err),
			Location: ast.Location{File: path},
		}
	}

	doc, diags := p.parse(string(data), path)
	return doc, diags, nil
}

func (p *Parser) parse(source, sourcePath string) (*ast.Document, []surerrors.Diagnostic) {
	asm := newDocumentAssembler(sourcePath, p.logger)
	doc := asm.assemble(source)
	return doc, asm.diags
}
