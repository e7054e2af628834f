package parser

import (
	"sargam-hq/surescript/pkg/sur/ast"
	surerrors "sargam-hq/surescript/pkg/sur/errors"
)

// beatAssembler groups a line's elements into beats. Outside brackets,
// whitespace ends the current beat; inside brackets it only separates
// elements. The grammar never nests brackets, so the state is a single
// boolean.
type beatAssembler struct {
	row   int // beat-line ordinal within the section, for positions
	line  int
	beats []*ast.Beat
	diags []surerrors.Diagnostic

	inBrackets bool
	elements   []*ast.Element
	startLoc   ast.Location // location of the current beat's first token
}

// assembleBeats turns one line's items into positioned beats.
func assembleBeats(items []beatItem, row, line int) ([]*ast.Beat, []surerrors.Diagnostic) {
	a := &beatAssembler{row: row, line: line}
	for _, item := range items {
		a.consume(item)
	}
	a.finish()
	return a.beats, a.diags
}

func (a *beatAssembler) consume(item beatItem) {
	if item.el != nil {
		if len(a.elements) == 0 {
			a.startLoc = item.el.Location
		}
		a.elements = append(a.elements, item.el)
		return
	}

	tok := item.tok
	switch tok.Kind {
	case TokenSeparator:
		if !a.inBrackets {
			a.flush()
		}

	case TokenOpenBracket:
		if a.inBrackets {
			a.skip(tok, "brackets do not nest")
			return
		}
		a.flush() // elements glued to the left of '[' form their own beat
		a.inBrackets = true
		a.startLoc = ast.Location{Line: tok.Line, Column: tok.Column}

	case TokenCloseBracket:
		if !a.inBrackets {
			a.skip(tok, "closing bracket without a matching open")
			return
		}
		if len(a.elements) == 0 {
			a.skip(tok, "empty brackets (a beat needs at least one element)")
		} else {
			a.emit(true)
		}
		a.inBrackets = false
	}
}

// finish flushes whatever the line left pending. An unterminated
// bracket still yields its beat: dropping the user's elements would
// lose content, so the dangling bracket is only diagnosed.
func (a *beatAssembler) finish() {
	if a.inBrackets {
		a.diags = append(a.diags, surerrors.Diagnostic{
			Location: a.startLoc,
			Fragment: "[",
			Reason:   "unterminated bracket at end of line",
		})
		if len(a.elements) > 0 {
			a.emit(true)
		}
		a.inBrackets = false
		return
	}
	a.flush()
}

// flush emits the pending elements as an unbracketed beat, if any.
func (a *beatAssembler) flush() {
	if len(a.elements) > 0 {
		a.emit(false)
	}
}

func (a *beatAssembler) emit(bracketed bool) {
	a.beats = append(a.beats, &ast.Beat{
		Elements:  a.elements,
		Bracketed: bracketed,
		Position:  &ast.Position{Row: a.row, Index: len(a.beats)},
		Location:  a.startLoc,
	})
	a.elements = nil
}

func (a *beatAssembler) skip(tok Token, reason string) {
	a.diags = append(a.diags, surerrors.Diagnostic{
		Location: ast.Location{Line: tok.Line, Column: tok.Column},
		Fragment: tok.Text,
		Reason:   reason,
	})
}
