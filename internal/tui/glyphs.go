package tui

// Glyphs drawn next to controls.

func plusGlyph() string       { return "+" }
func trashGlyph() string      { return "✕" }
func calculatorGlyph() string { return "=" }
