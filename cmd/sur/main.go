// Sur is the command-line toolchain for SureScript (.sur) music
// notation files.
//
// It parses, validates, formats, and scaffolds compositions written in
// SureScript, a plain-text notation for Indian classical music built
// around the sargam solfège (Sa Re Ga Ma Pa Dha Ni).
//
// Usage:
//
//	# Rewrite a composition in canonical notation
//	sur fmt --write song.sur
//
//	# Check formatting without rewriting (CI-friendly)
//	sur fmt --check --dir songs/
//
//	# Validate compositions and report problems
//	sur lint --file song.sur
//	sur lint --dir songs/ --format json
//
//	# Summarize a composition
//	sur inspect --file song.sur
//
//	# Scaffold a new composition
//	sur new --name "Eri Aali" --raag yaman -o eri-aali.sur
//
//	# Show version information
//	sur version
package main

func main() {
	Execute()
}
