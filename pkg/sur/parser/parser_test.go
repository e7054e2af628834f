package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sargam-hq/surescript/pkg/sur/ast"
)

func TestParser_Parse_Simple(t *testing.T) {
	p := NewParser()
	doc := p.Parse(`%%CONFIG
name: Morning Practice
raag: bhairavi
%%SCALE
S -> Sa
R -> Shuddha Re
%%COMPOSITION
#Sthayi
b: S R G M
b: [sa:S re:R] - *
`)

	if got := doc.Name(); got != "Morning Practice" {
		t.Errorf("Name() = %q, want %q", got, "Morning Practice")
	}
	if got := doc.GetMetadata("raag"); got != "bhairavi" {
		t.Errorf("raag = %q, want %q", got, "bhairavi")
	}
	if got := len(doc.Scale); got != 2 {
		t.Errorf("len(Scale) = %d, want 2", got)
	}
	if got := doc.Scale["R"]; got != "Shuddha Re" {
		t.Errorf("Scale[R] = %q, want %q", got, "Shuddha Re")
	}

	if doc.SectionCount() != 1 {
		t.Fatalf("SectionCount() = %d, want 1", doc.SectionCount())
	}
	section := doc.Composition[0]
	if section.Title != "Sthayi" {
		t.Errorf("Title = %q, want %q", section.Title, "Sthayi")
	}
	if got := section.BeatCount(); got != 7 {
		t.Fatalf("BeatCount() = %d, want 7", got)
	}

	// First row: four single-note beats.
	first := section.Beats[0]
	if first.ElementCount() != 1 || !first.Elements[0].Note.Equal(&ast.Note{Pitch: ast.PitchSa}) {
		t.Errorf("first beat = %+v, want single S", first)
	}

	// Second row starts with the bracketed fusion beat.
	fused := section.Beats[4]
	if !fused.Bracketed {
		t.Error("beat 4 should be bracketed")
	}
	if fused.ElementCount() != 2 {
		t.Fatalf("beat 4 ElementCount() = %d, want 2", fused.ElementCount())
	}
	if fused.Elements[0].Lyrics != "sa" || !fused.Elements[0].Note.Equal(&ast.Note{Pitch: ast.PitchSa}) {
		t.Errorf("beat 4 element 0 = %+v, want sa:S", fused.Elements[0])
	}
	if !section.Beats[5].Elements[0].Note.IsSilence() {
		t.Error("beat 5 should be silence")
	}
	if !section.Beats[6].Elements[0].Note.IsSustain() {
		t.Error("beat 6 should be sustain")
	}
}

func TestParser_Parse_Positions(t *testing.T) {
	doc := NewParser().Parse(`%%COMPOSITION
#Sthayi
b: S R
b: G M P
#Antara
b: N
`)

	sthayi := doc.Composition[0]
	wantPositions := []ast.Position{
		{Row: 0, Index: 0}, {Row: 0, Index: 1},
		{Row: 1, Index: 0}, {Row: 1, Index: 1}, {Row: 1, Index: 2},
	}
	if len(sthayi.Beats) != len(wantPositions) {
		t.Fatalf("len(Beats) = %d, want %d", len(sthayi.Beats), len(wantPositions))
	}
	for i, want := range wantPositions {
		got := sthayi.Beats[i].Position
		if got == nil || *got != want {
			t.Errorf("Beats[%d].Position = %v, want %v", i, got, want)
		}
	}

	// Rows restart in a new section.
	antara := doc.Composition[1]
	if got := antara.Beats[0].Position; got == nil || *got != (ast.Position{Row: 0, Index: 0}) {
		t.Errorf("Antara beat position = %v, want 0:0", got)
	}
}

func TestParser_Parse_CompoundEquivalence(t *testing.T) {
	dense := NewParser().Parse("%%COMPOSITION\n#A\nb: SRG\n")
	bracketed := NewParser().Parse("%%COMPOSITION\n#A\nb: [S R G]\n")

	denseBeat := dense.Composition[0].Beats[0]
	bracketedBeat := bracketed.Composition[0].Beats[0]

	if denseBeat.ElementCount() != 3 {
		t.Fatalf("dense beat ElementCount() = %d, want 3", denseBeat.ElementCount())
	}
	if !denseBeat.Equal(bracketedBeat) {
		t.Error("\"SRG\" and \"[S R G]\" should parse to Equal beats")
	}
	if denseBeat.Bracketed || !bracketedBeat.Bracketed {
		t.Error("Bracketed should record the source spelling")
	}
}

func TestParser_Parse_SilenceSustainIsolation(t *testing.T) {
	doc := NewParser().Parse("%%COMPOSITION\n#A\nb: S * * *\n")
	section := doc.Composition[0]
	if got := section.BeatCount(); got != 4 {
		t.Fatalf("BeatCount() = %d, want 4", got)
	}
	for i := 1; i < 4; i++ {
		if !section.Beats[i].Elements[0].Note.IsSustain() {
			t.Errorf("beat %d should be a sustain", i)
		}
	}
}

func TestParser_Parse_MarkerVariants(t *testing.T) {
	// The original corpus wrote markers as "%% CONFIG", "@SCALE", and
	// in mixed case; all are accepted.
	doc := NewParser().Parse(`%% CONFIG
name: Variant Test
@scale
S -> Sa
%%Composition
#A
b: S
`)

	if doc.Name() != "Variant Test" {
		t.Errorf("Name() = %q, want %q", doc.Name(), "Variant Test")
	}
	if len(doc.Scale) != 1 {
		t.Errorf("len(Scale) = %d, want 1", len(doc.Scale))
	}
	if doc.BeatCount() != 1 {
		t.Errorf("BeatCount() = %d, want 1", doc.BeatCount())
	}
}

func TestParser_Parse_QuotedConfigValue(t *testing.T) {
	doc := NewParser().Parse("%%CONFIG\nname: \"Quoted Name\"\ntaal: teental\n")
	if got := doc.Name(); got != "Quoted Name" {
		t.Errorf("Name() = %q, want %q", got, "Quoted Name")
	}
}

func TestParser_Parse_ConfigValueWithColons(t *testing.T) {
	doc := NewParser().Parse("%%CONFIG\nrecorded: 12:30:45\n")
	if got := doc.GetMetadata("recorded"); got != "12:30:45" {
		t.Errorf("recorded = %q, want %q", got, "12:30:45")
	}
}

func TestParser_Parse_Comments(t *testing.T) {
	doc, diags := NewParser().ParseWithDiagnostics(`%%CONFIG
name: Test // trailing comment
// full line comment
%%COMPOSITION
#A
b: S R // two beats only
b: ["sa // re":G]
`)

	if got := doc.Name(); got != "Test" {
		t.Errorf("Name() = %q, want %q", got, "Test")
	}
	if got := doc.Composition[0].BeatCount(); got != 3 {
		t.Errorf("BeatCount() = %d, want 3", got)
	}
	// A quoted lyric keeps its slashes.
	if got := doc.Composition[0].Beats[2].Elements[0].Lyrics; got != "sa // re" {
		t.Errorf("quoted lyric = %q, want %q", got, "sa // re")
	}
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", diags)
	}
}

func TestParser_Parse_LenientSkips(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		wantReason string
		wantBeats  int
	}{
		{
			"beat line before any section",
			"%%COMPOSITION\nb: S R\n#A\nb: G\n",
			"beat line before any section header",
			1,
		},
		{
			"stray close bracket",
			"%%COMPOSITION\n#A\nb: S ] R\n",
			"closing bracket without a matching open",
			2,
		},
		{
			"nested open bracket",
			"%%COMPOSITION\n#A\nb: [S [R]\n",
			"brackets do not nest",
			1,
		},
		{
			"empty brackets",
			"%%COMPOSITION\n#A\nb: [] S\n",
			"empty brackets (a beat needs at least one element)",
			1,
		},
		{
			"unterminated bracket keeps elements",
			"%%COMPOSITION\n#A\nb: [sa:S re:R\n",
			"unterminated bracket at end of line",
			1,
		},
		{
			"stray colon",
			"%%COMPOSITION\n#A\nb: S : R\n",
			"colon without a lyric to its left",
			2,
		},
		{
			"colon cannot fuse to silence",
			"%%COMPOSITION\n#A\nb: [sa:-]\n",
			"colon must join lyrics to a pitched note",
			1,
		},
		{
			"config line without colon",
			"%%CONFIG\njust some text\n",
			"CONFIG entry is not 'key: value'",
			0,
		},
		{
			"scale line without arrow",
			"%%SCALE\nS Sa\n",
			"SCALE entry is not 'symbol -> name'",
			0,
		},
		{
			"unknown marker",
			"%%CONFG\nname: lost\n%%COMPOSITION\n#A\nb: S\n",
			"unknown module marker (Did you mean 'CONFIG'?)",
			1,
		},
		{
			"content before first marker",
			"hello\n%%COMPOSITION\n#A\nb: S\n",
			"content before the first module marker",
			1,
		},
		{
			"stray composition line",
			"%%COMPOSITION\n#A\nnot a beat line\nb: S\n",
			"not a section header or beat line",
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, diags := NewParser().ParseWithDiagnostics(tt.source)

			if got := doc.BeatCount(); got != tt.wantBeats {
				t.Errorf("BeatCount() = %d, want %d", got, tt.wantBeats)
			}

			found := false
			for _, d := range diags {
				if d.Reason == tt.wantReason {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("diagnostics = %v, want one with reason %q", diags, tt.wantReason)
			}
		})
	}
}

func TestParser_Parse_UnknownMarkerDropsBlock(t *testing.T) {
	doc, _ := NewParser().ParseWithDiagnostics("%%CONFG\nname: lost\n%%CONFIG\nname: kept\n")
	if got := doc.Name(); got != "kept" {
		t.Errorf("Name() = %q, want %q (unknown block contents must not leak)", got, "kept")
	}
}

func TestParser_Parse_DuplicateBlocksMerge(t *testing.T) {
	doc := NewParser().Parse(`%%CONFIG
name: First
%%COMPOSITION
#A
b: S
%%CONFIG
name: Second
tempo: drut
%%COMPOSITION
#B
b: R
`)

	if got := doc.Name(); got != "Second" {
		t.Errorf("Name() = %q, want %q (later entries overwrite)", got, "Second")
	}
	if got := doc.GetMetadata("tempo"); got != "drut" {
		t.Errorf("tempo = %q, want %q", got, "drut")
	}
	if got := doc.SectionCount(); got != 2 {
		t.Errorf("SectionCount() = %d, want 2 (sections append)", got)
	}
}

func TestParser_Parse_UnterminatedBracketKeepsContent(t *testing.T) {
	doc, _ := NewParser().ParseWithDiagnostics("%%COMPOSITION\n#A\nb: [sa:S re:R\n")
	section := doc.Composition[0]
	if section.BeatCount() != 1 {
		t.Fatalf("BeatCount() = %d, want 1", section.BeatCount())
	}
	beat := section.Beats[0]
	if !beat.Bracketed {
		t.Error("recovered beat should stay bracketed")
	}
	if beat.ElementCount() != 2 {
		t.Errorf("ElementCount() = %d, want 2", beat.ElementCount())
	}
}

func TestParser_Parse_EmptyLyricDropped(t *testing.T) {
	doc, diags := NewParser().ParseWithDiagnostics("%%COMPOSITION\n#A\nb: [\"\" S]\n")
	beat := doc.Composition[0].Beats[0]
	if beat.ElementCount() != 1 {
		t.Errorf("ElementCount() = %d, want 1 (empty lyric dropped)", beat.ElementCount())
	}
	found := false
	for _, d := range diags {
		if d.Reason == "empty lyric" {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want an empty-lyric skip", diags)
	}
}

func TestParser_Parse_SectionWithoutBeats(t *testing.T) {
	doc := NewParser().Parse("%%COMPOSITION\n#Sthayi\n#Antara\nb: S\n")
	if doc.SectionCount() != 2 {
		t.Fatalf("SectionCount() = %d, want 2", doc.SectionCount())
	}
	if got := doc.Composition[0].BeatCount(); got != 0 {
		t.Errorf("Sthayi BeatCount() = %d, want 0", got)
	}
	if got := doc.Composition[1].BeatCount(); got != 1 {
		t.Errorf("Antara BeatCount() = %d, want 1", got)
	}
}

func TestParser_Parse_CRLF(t *testing.T) {
	doc := NewParser().Parse("%%CONFIG\r\nname: CRLF Test\r\n%%COMPOSITION\r\n#A\r\nb: S R\r\n")
	if doc.Name() != "CRLF Test" {
		t.Errorf("Name() = %q, want %q", doc.Name(), "CRLF Test")
	}
	if got := doc.BeatCount(); got != 2 {
		t.Errorf("BeatCount() = %d, want 2", got)
	}
}

func TestParser_Parse_EmptyInput(t *testing.T) {
	doc, diags := NewParser().ParseWithDiagnostics("")
	if doc == nil {
		t.Fatal("Parse returned nil document")
	}
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", diags)
	}
	if doc.SectionCount() != 0 || len(doc.Metadata) != 0 || len(doc.Scale) != 0 {
		t.Error("empty input should produce an empty document")
	}
}

func TestParser_Parse_LocationsCarrySource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.sur")
	source := "%%COMPOSITION\n#A\nb: S ]\n"
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, diags, err := NewParser().ParseFileWithDiagnostics(path)
	if err != nil {
		t.Fatalf("ParseFileWithDiagnostics() failed: %v", err)
	}
	if doc.SourceFile != path {
		t.Errorf("SourceFile = %q, want %q", doc.SourceFile, path)
	}
	if len(diags) != 1 {
		t.Fatalf("len(diags) = %d, want 1", len(diags))
	}
	if diags[0].Location.File != path {
		t.Errorf("diagnostic file = %q, want %q", diags[0].Location.File, path)
	}
	if diags[0].Location.Line != 3 {
		t.Errorf("diagnostic line = %d, want 3", diags[0].Location.Line)
	}
	if beat := doc.Composition[0].Beats[0]; beat.Location.File != path {
		t.Errorf("beat location file = %q, want %q", beat.Location.File, path)
	}
}

func TestParser_ParseFile_MissingFile(t *testing.T) {
	_, err := NewParser().ParseFile("does-not-exist.sur")
	if err == nil {
		t.Fatal("ParseFile() should fail for a missing file")
	}
}

func TestParser_WithMaxFileSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.sur")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 128)), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewParser().WithMaxFileSize(64).ParseFile(path)
	if err == nil {
		t.Fatal("ParseFile() should fail when the file exceeds the size limit")
	}
	if !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("error = %v, want a size-limit message", err)
	}
}
