package bibledata

import "slices"

// omission names verses that a group of translations leave out of the text.
type omission struct {
	book, chapter int
	verses        []int
	translations  []string
}

var (
	criticalText = []string{"NIV", "NASB", "RSV", "NRSV", "NCV", "ESV"}
	paraphrased  = []string{"NIV", "NASB", "RSV", "NRSV", "NCV", "ESV", "LB"}
)

// omissionRules lists the textual-critical exclusions known per translation.
var omissionRules = []omission{
	{40, 12, []int{47}, []string{"RSV", "ESV"}}, // Matt 12:47
	{42, 24, []int{40}, []string{"RSV", "ESV"}}, // Luke 24:40
	{43, 7, []int{53}, []string{"RSV", "ESV"}},  // John 7:53

	{40, 21, []int{44}, []string{"RSV"}},     // Matt 21:44
	{42, 22, []int{43, 44}, []string{"RSV"}}, // Luke 22:43-44
	{42, 24, []int{12}, []string{"RSV"}},     // Luke 24:12
	{47, 13, []int{14}, []string{"RSV"}},     // 2 Cor 13:14
	{59, 1, []int{8}, []string{"RSV"}},       // Jas 1:8

	{40, 17, []int{21}, criticalText}, // Matt 17:21
	{40, 18, []int{11}, criticalText}, // Matt 18:11
	{40, 23, []int{14}, criticalText}, // Matt 23:14
	{41, 15, []int{28}, criticalText}, // Mark 15:28
	{42, 17, []int{36}, criticalText}, // Luke 17:36
	{43, 5, []int{4}, criticalText},   // John 5:4
	{44, 8, []int{37}, criticalText},  // Acts 8:37
	{45, 16, []int{24}, criticalText}, // Rom 16:24
	{44, 24, []int{7}, criticalText},  // Acts 24:7

	{41, 7, []int{16}, paraphrased},  // Mark 7:16
	{41, 9, []int{44}, paraphrased},  // Mark 9:44
	{41, 9, []int{46}, paraphrased},  // Mark 9:46
	{41, 11, []int{26}, paraphrased}, // Mark 11:26
	{42, 23, []int{17}, paraphrased}, // Luke 23:17
	{44, 15, []int{34}, paraphrased}, // Acts 15:34
	{44, 28, []int{29}, paraphrased}, // Acts 28:29
}

// hasOmissions reports whether any rule applies to the upper-cased code.
func hasOmissions(code string) bool {
	for _, rule := range omissionRules {
		if slices.Contains(rule.translations, code) {
			return true
		}
	}
	return false
}

// withOmissions returns a copy of books with every rule for code applied.
func withOmissions(books []Book, code string) []Book {
	out := CloneBooks(books)
	for _, rule := range omissionRules {
		if !slices.Contains(rule.translations, code) {
			continue
		}
		out[rule.book-1].omit(rule.chapter, rule.verses...)
	}
	return out
}

// Translations returns the translation codes that carry omission data in
// the built-in tables.
func Translations() []string {
	var codes []string
	for _, rule := range omissionRules {
		for _, t := range rule.translations {
			if !slices.Contains(codes, t) {
				codes = append(codes, t)
			}
		}
	}
	slices.Sort(codes)
	return codes
}
