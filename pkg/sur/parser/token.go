package parser

import (
	"strings"

	"sargam-hq/surescript/pkg/sur/ast"
	surerrors "sargam-hq/surescript/pkg/sur/errors"
)

// TokenKind identifies the lexical class of a token on a beat line.
type TokenKind int

const (
	TokenNote         TokenKind = iota // A single note unit (pitch with octave mark, silence, or sustain)
	TokenLyrics                        // A lyric word (bare or quoted)
	TokenColon                         // The lyrics:note fusion separator
	TokenOpenBracket                   // [
	TokenCloseBracket                  // ]
	TokenSeparator                     // A run of whitespace between beats
)

// String returns the token kind name for diagnostics and tests.
func (k TokenKind) String() string {
	switch k {
	case TokenNote:
		return "NOTE"
	case TokenLyrics:
		return "LYRICS"
	case TokenColon:
		return "COLON"
	case TokenOpenBracket:
		return "OPEN_BRACKET"
	case TokenCloseBracket:
		return "CLOSE_BRACKET"
	case TokenSeparator:
		return "SEPARATOR"
	default:
		return "UNKNOWN"
	}
}

// Token is one lexical unit of a beat line. Note tokens carry the
// decoded note; lyric tokens carry the text with quotes stripped.
type Token struct {
	Kind   TokenKind
	Text   string    // Source text (quotes removed for quoted lyrics)
	Note   *ast.Note // Decoded note, set only for TokenNote
	Line   int       // Line number (1-based)
	Column int       // Column of the first byte (1-based)
}

// Tokenize lexes a single beat line (the text after the "b:" prefix)
// into tokens. It never fails: unterminated quotes are tolerated and
// the contents kept. Exposed for tooling and tests; the parser drives
// the same machinery internally.
func Tokenize(input string) []Token {
	tokens, _ := tokenize(input, 1, 1)
	return tokens
}

// tokenizer walks the bytes of one beat line. Runs of non-structural
// bytes accumulate between start and cur and are classified as a whole
// when a delimiter ends them: a run that parses entirely as note units
// becomes one NOTE token per unit, anything else becomes a single
// LYRICS token. "SRG" is three notes; "SaReGa" is one lyric.
type tokenizer struct {
	src    string
	start  int
	cur    int
	line   int
	colOff int // column of src[0] in the original source line (1-based)
	tokens []Token
	diags  []surerrors.Diagnostic
}

func tokenize(input string, line, colOff int) ([]Token, []surerrors.Diagnostic) {
	t := &tokenizer{src: input, line: line, colOff: colOff}
	t.scan()
	return t.tokens, t.diags
}

func (t *tokenizer) scan() {
	for t.cur < len(t.src) {
		c := t.src[t.cur]
		switch {
		case c == ' ' || c == '\t':
			t.flushRun()
			t.scanSeparator()
		case c == '[':
			t.flushRun()
			t.addToken(TokenOpenBracket, "[", nil, t.cur)
			t.cur++
			t.start = t.cur
		case c == ']':
			t.flushRun()
			t.addToken(TokenCloseBracket, "]", nil, t.cur)
			t.cur++
			t.start = t.cur
		case c == ':':
			t.flushRun()
			t.addToken(TokenColon, ":", nil, t.cur)
			t.cur++
			t.start = t.cur
		case c == '"':
			t.flushRun()
			t.scanQuoted()
		default:
			t.cur++
		}
	}
	t.flushRun()
}

// scanSeparator collapses consecutive whitespace into one token.
func (t *tokenizer) scanSeparator() {
	begin := t.cur
	for t.cur < len(t.src) && (t.src[t.cur] == ' ' || t.src[t.cur] == '\t') {
		t.cur++
	}
	t.addToken(TokenSeparator, t.src[begin:t.cur], nil, begin)
	t.start = t.cur
}

// scanQuoted consumes a double-quoted lyric. The contents are taken
// verbatim (there are no escapes; a quote always ends the lyric). An
// unterminated quote keeps the rest of the line as the lyric.
func (t *tokenizer) scanQuoted() {
	begin := t.cur
	t.cur++ // opening quote
	end := strings.IndexByte(t.src[t.cur:], '"')
	if end < 0 {
		t.addDiag(begin, t.src[begin:], "unterminated quote")
		t.addToken(TokenLyrics, t.src[t.cur:], nil, begin)
		t.cur = len(t.src)
	} else {
		t.addToken(TokenLyrics, t.src[t.cur:t.cur+end], nil, begin)
		t.cur += end + 1 // past the closing quote
	}
	t.start = t.cur
}

// flushRun classifies the pending run, if any.
func (t *tokenizer) flushRun() {
	if t.start >= t.cur {
		t.start = t.cur
		return
	}
	run := t.src[t.start:t.cur]
	if notes, ok := splitNoteRun(run); ok {
		off := t.start
		for _, n := range notes {
			text := n.String()
			t.addToken(TokenNote, text, n, off)
			off += len(text)
		}
	} else {
		t.addToken(TokenLyrics, run, nil, t.start)
	}
	t.start = t.cur
}

func (t *tokenizer) addToken(kind TokenKind, text string, note *ast.Note, offset int) {
	t.tokens = append(t.tokens, Token{
		Kind:   kind,
		Text:   text,
		Note:   note,
		Line:   t.line,
		Column: t.colOff + offset,
	})
}

func (t *tokenizer) addDiag(offset int, fragment, reason string) {
	t.diags = append(t.diags, surerrors.Diagnostic{
		Location: ast.Location{Line: t.line, Column: t.colOff + offset},
		Fragment: fragment,
		Reason:   reason,
	})
}

// IsNoteRun reports whether text would lex entirely as note units.
// The formatter uses this to decide when lyric text needs quoting to
// keep it from being read back as notes.
func IsNoteRun(text string) bool {
	_, ok := splitNoteRun(text)
	return ok
}

// splitNoteRun splits a run into note units, or reports that the run is
// not wholly composed of them. Partial matches do not count: the run is
// notes only if every byte participates in a unit.
func splitNoteRun(run string) ([]*ast.Note, bool) {
	var notes []*ast.Note
	i := 0
	for i < len(run) {
		note, n := scanNoteUnit(run[i:])
		if n == 0 {
			return nil, false
		}
		notes = append(notes, note)
		i += n
	}
	return notes, len(notes) > 0
}

// scanNoteUnit decodes one note unit at the start of s and returns it
// with its byte length, or (nil, 0) if s does not start with one.
// Units: "-" silence, "*" sustain, ".P" lower octave, "P'" upper
// octave, "P" middle octave, where P is one of S R G M P D N.
func scanNoteUnit(s string) (*ast.Note, int) {
	if s == "" {
		return nil, 0
	}
	switch s[0] {
	case '-':
		return &ast.Note{Pitch: ast.PitchSilence}, 1
	case '*':
		return &ast.Note{Pitch: ast.PitchSustain}, 1
	case '.':
		if len(s) >= 2 {
			if p, ok := pitchLetter(s[1]); ok {
				return &ast.Note{Pitch: p, Octave: ast.OctaveLower}, 2
			}
		}
		return nil, 0
	default:
		p, ok := pitchLetter(s[0])
		if !ok {
			return nil, 0
		}
		if len(s) >= 2 && s[1] == '\'' {
			return &ast.Note{Pitch: p, Octave: ast.OctaveUpper}, 2
		}
		return &ast.Note{Pitch: p}, 1
	}
}

// pitchLetter maps an uppercase sargam letter to its pitch.
func pitchLetter(c byte) (ast.Pitch, bool) {
	switch c {
	case 'S', 'R', 'G', 'M', 'P', 'D', 'N':
		return ast.Pitch(string(c)), true
	}
	return "", false
}
