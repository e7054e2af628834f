package builder

// DefaultScale returns the conventional twelve-entry Hindustani scale:
// the seven shuddha swaras plus the komal and teevra variants, komal
// spelled lowercase. The map is freshly allocated on each call.
func DefaultScale() map[string]string {
	return map[string]string{
		"S": "Sa",
		"r": "Komal Re",
		"R": "Shuddha Re",
		"g": "Komal Ga",
		"G": "Shuddha Ga",
		"m": "Shuddha Ma",
		"M": "Teevra Ma",
		"P": "Pa",
		"d": "Komal Dha",
		"D": "Shuddha Dha",
		"n": "Komal Ni",
		"N": "Shuddha Ni",
	}
}
