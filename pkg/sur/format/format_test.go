package format

import (
	"testing"

	"sargam-hq/surescript/pkg/sur/ast"
	"sargam-hq/surescript/pkg/sur/parser"
)

func note(p ast.Pitch, o ast.Octave) *ast.Element {
	return &ast.Element{Note: &ast.Note{Pitch: p, Octave: o}}
}

func TestFormatter_Beat(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		name string
		beat *ast.Beat
		want string
	}{
		{
			"single note",
			&ast.Beat{Elements: []*ast.Element{note(ast.PitchSa, ast.OctaveMiddle)}},
			"S",
		},
		{
			"single note keeps octave mark",
			&ast.Beat{Elements: []*ast.Element{note(ast.PitchSa, ast.OctaveUpper)}},
			"S'",
		},
		{
			"all note beat collapses dense",
			&ast.Beat{
				Elements: []*ast.Element{
					note(ast.PitchSa, ast.OctaveMiddle),
					note(ast.PitchRe, ast.OctaveMiddle),
					note(ast.PitchGa, ast.OctaveMiddle),
				},
				Bracketed: true,
			},
			"SRG",
		},
		{
			"dense form keeps octave marks",
			&ast.Beat{
				Elements: []*ast.Element{
					note(ast.PitchSa, ast.OctaveLower),
					note(ast.PitchRe, ast.OctaveUpper),
				},
			},
			".SR'",
		},
		{
			"lyrics force brackets",
			&ast.Beat{
				Elements: []*ast.Element{
					{Lyrics: "sa", Note: &ast.Note{Pitch: ast.PitchSa}},
					{Lyrics: "re", Note: &ast.Note{Pitch: ast.PitchRe}},
				},
			},
			"[sa:S re:R]",
		},
		{
			"lyrics only beat",
			&ast.Beat{Elements: []*ast.Element{{Lyrics: "aalaap"}}},
			"[aalaap]",
		},
		{
			"mixed lyric and note elements",
			&ast.Beat{
				Elements: []*ast.Element{
					{Lyrics: "sa", Note: &ast.Note{Pitch: ast.PitchSa}},
					note(ast.PitchRe, ast.OctaveMiddle),
				},
			},
			"[sa:S R]",
		},
		{
			"silence",
			&ast.Beat{Elements: []*ast.Element{note(ast.PitchSilence, ast.OctaveMiddle)}},
			"-",
		},
		{
			"sustain",
			&ast.Beat{Elements: []*ast.Element{note(ast.PitchSustain, ast.OctaveMiddle)}},
			"*",
		},
		{
			"empty beat",
			&ast.Beat{},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Beat(tt.beat); got != tt.want {
				t.Errorf("Beat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatter_LyricQuoting(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		name   string
		lyrics string
		want   string
	}{
		{"plain word stays bare", "sa", "[sa]"},
		{"whitespace forces quotes", "sa re", `["sa re"]`},
		{"note shaped lyric forces quotes", "SRG", `["SRG"]`},
		{"bare silence mark forces quotes", "-", `["-"]`},
		{"bare sustain mark forces quotes", "*", `["*"]`},
		{"embedded silence mark forces quotes", "aa-ha", `["aa-ha"]`},
		{"octave shaped lyric forces quotes", "S'", `["S'"]`},
		{"colon forces quotes", "a:b", `["a:b"]`},
		{"bracket forces quotes", "a]b", `["a]b"]`},
		{"comment slashes force quotes", "a//b", `["a//b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			beat := &ast.Beat{Elements: []*ast.Element{{Lyrics: tt.lyrics}}}
			if got := f.Beat(beat); got != tt.want {
				t.Errorf("Beat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatter_Line(t *testing.T) {
	f := NewFormatter()
	beats := []*ast.Beat{
		{Elements: []*ast.Element{note(ast.PitchSa, ast.OctaveMiddle)}},
		{Elements: []*ast.Element{
			note(ast.PitchRe, ast.OctaveMiddle),
			note(ast.PitchGa, ast.OctaveMiddle),
		}},
		{Elements: []*ast.Element{{Lyrics: "sa", Note: &ast.Note{Pitch: ast.PitchMa}}}},
		{Elements: []*ast.Element{note(ast.PitchSilence, ast.OctaveMiddle)}},
	}

	want := "S RG [sa:M] -"
	if got := f.Line(beats); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestFormatter_Document(t *testing.T) {
	doc := ast.NewDocument()
	doc.Metadata["name"] = "Evening"
	doc.Metadata["raag"] = "yaman"
	doc.Scale["S"] = "Sa"
	doc.Scale["R"] = "Shuddha Re"
	doc.Composition = []*ast.Section{{
		Title: "Sthayi",
		Beats: []*ast.Beat{
			{Elements: []*ast.Element{note(ast.PitchSa, ast.OctaveMiddle)}, Position: &ast.Position{Row: 0, Index: 0}},
			{Elements: []*ast.Element{note(ast.PitchRe, ast.OctaveMiddle)}, Position: &ast.Position{Row: 0, Index: 1}},
			{Elements: []*ast.Element{note(ast.PitchGa, ast.OctaveMiddle)}, Position: &ast.Position{Row: 1, Index: 0}},
		},
	}}

	want := `%%CONFIG
name: Evening
raag: yaman
%%SCALE
R -> Shuddha Re
S -> Sa
%%COMPOSITION
#Sthayi
b: S R
b: G
`
	if got := NewFormatter().Document(doc); got != want {
		t.Errorf("Document() =\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatter_Document_RowsPreserved(t *testing.T) {
	source := `%%COMPOSITION
#A
b: S R
b: G M
`
	doc := parser.NewParser().Parse(source)
	got := NewFormatter().Document(doc)

	want := "%%CONFIG\n%%SCALE\n%%COMPOSITION\n#A\nb: S R\nb: G M\n"
	if got != want {
		t.Errorf("Document() = %q, want %q", got, want)
	}
}

func TestFormatter_Document_Idempotent(t *testing.T) {
	source := `%% CONFIG
name: "Messy Input"
tempo:   madhya
%%SCALE
S   ->   Sa
%%COMPOSITION
#Sthayi
b:   [S   R   G]   "sa re":M   -
`
	p := parser.NewParser()
	f := NewFormatter()

	once := f.Document(p.Parse(source))
	twice := f.Document(p.Parse(once))

	if once != twice {
		t.Errorf("formatting is not idempotent:\nfirst:  %q\nsecond: %q", once, twice)
	}
}

func TestFormatter_RoundTrip(t *testing.T) {
	sources := []string{
		"%%CONFIG\nname: Round Trip\n%%SCALE\nS -> Sa\n%%COMPOSITION\n#A\nb: S R G M\n",
		"%%COMPOSITION\n#A\nb: [sa:S re:R] - * SRG\n",
		"%%COMPOSITION\n#A\nb: .S S' [\"sa re\":G]\nb: N .N N'\n",
		"%%COMPOSITION\n#A\nb: [\"SRG\"] [\"-\"] [\"*\"]\n",
		"%%CONFIG\nname: Sections\n%%COMPOSITION\n#One\nb: S\n#Two\nb: R\n#Empty\n",
	}

	p := parser.NewParser()
	f := NewFormatter()

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			doc := p.Parse(source)
			text := f.Document(doc)
			again := p.Parse(text)

			if !doc.Equal(again) {
				t.Errorf("round trip changed the document:\nsource: %q\nformatted: %q", source, text)
			}
		})
	}
}

func TestFormatter_Note(t *testing.T) {
	f := NewFormatter()
	n := &ast.Note{Pitch: ast.PitchDha, Octave: ast.OctaveLower}
	if got := f.Note(n); got != ".D" {
		t.Errorf("Note() = %q, want %q", got, ".D")
	}
}
