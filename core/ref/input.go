package ref

// Input is a citation in one of the accepted shapes: Fields, Normalized,
// FreeForm, Text, or an already resolved Verse.
type Input interface {
	isInput()
}

// Fields is a citation given as explicit numbers. An empty Translation
// means no specific translation.
type Fields struct {
	Book        int
	Chapter     int
	Verse       int
	Translation string
}

// Normalized is a "book-chapter-verse[-translation]" string such as "46-2-1-esv".
type Normalized string

// FreeForm is human-written text such as "1 Cor 12:1" or "Romans 8:28 ESV".
type FreeForm string

// Text is a string of unknown shape. It is tried as Normalized first and
// falls back to FreeForm.
type Text string

func (Fields) isInput()     {}
func (Normalized) isInput() {}
func (FreeForm) isInput()   {}
func (Text) isInput()       {}
