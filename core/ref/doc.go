// Package ref resolves human-written scripture citations into validated
// references and reasons about passages between them.
//
// A citation is accepted in three shapes, tried in order:
//   - explicit fields: book number, chapter, verse and optional translation
//   - a normalized string: "46-2-1" or "46-2-1-esv"
//   - free-form text: "1 Cor 12:1", "1cor12:1", "Romans 8:28 ESV"
//
// Every Verse is validated against the book table of its translation, so a
// Verse that exists always names a real, non-omitted verse. A Passage is an
// inclusive range between two verses of the same translation:
//
//	p, err := ref.ParseRange("James 2:10-3:4")
//	p.Length()                          // 21
//	p.Includes(ref.MustParse("Jas 2:11")) // true
//	p.SmartFormat()                     // "James 2:10 - 3:4"
//
// Verses and passages render through a small template language; see
// Verse.Format and Passage.Format.
package ref
