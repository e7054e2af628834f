package parser

import (
	"sargam-hq/surescript/pkg/sur/ast"
	surerrors "sargam-hq/surescript/pkg/sur/errors"
)

// beatItem is what the element builder hands the beat assembler: either
// a finished element or a beat-boundary token (separator or bracket).
type beatItem struct {
	el  *ast.Element // set when the item is an element
	tok Token        // the boundary token when el is nil
}

// buildElements walks a token stream and fuses tokens into elements.
//
// The only fusion is LYRICS COLON NOTE, and only when the note is
// pitched: silence and sustain marks never carry lyrics, so a colon
// in front of them is skipped and both sides stand alone. Any other
// colon is likewise skipped. Separator and bracket tokens pass through
// untouched for the beat assembler.
func buildElements(tokens []Token) ([]beatItem, []surerrors.Diagnostic) {
	var items []beatItem
	var diags []surerrors.Diagnostic

	skip := func(tok Token, reason string) {
		diags = append(diags, surerrors.Diagnostic{
			Location: ast.Location{Line: tok.Line, Column: tok.Column},
			Fragment: tok.Text,
			Reason:   reason,
		})
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Kind {
		case TokenSeparator, TokenOpenBracket, TokenCloseBracket:
			items = append(items, beatItem{tok: tok})

		case TokenNote:
			items = append(items, beatItem{
				el: &ast.Element{
					Note:     tok.Note,
					Location: ast.Location{Line: tok.Line, Column: tok.Column},
				},
			})

		case TokenLyrics:
			if tok.Text == "" {
				skip(tok, "empty lyric")
				continue
			}
			el := &ast.Element{
				Lyrics:   tok.Text,
				Location: ast.Location{Line: tok.Line, Column: tok.Column},
			}
			if i+2 < len(tokens) &&
				tokens[i+1].Kind == TokenColon &&
				tokens[i+2].Kind == TokenNote &&
				tokens[i+2].Note.IsPitched() {
				el.Note = tokens[i+2].Note
				i += 2
			}
			items = append(items, beatItem{el: el})

		case TokenColon:
			// Reached only when the colon did not participate in a fusion.
			reason := "colon without a lyric to its left"
			if i > 0 && tokens[i-1].Kind == TokenLyrics {
				reason = "colon must join lyrics to a pitched note"
			}
			skip(tok, reason)
		}
	}

	return items, diags
}
