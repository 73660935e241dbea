package bibledata

// defaultBooks is the protestant canon with KJV verse counts and no omissions.
var defaultBooks = []Book{
	{
		Name:          "Genesis",
		Testament:     OldTestament,
		Abbreviations: []string{"gen", "ge", "gn"},
		VerseCounts:   []int{31, 25, 24, 26, 32, 22, 24, 22, 29, 32, 32, 20, 18, 24, 21, 16, 27, 33, 38, 18, 34, 24, 20, 67, 34, 35, 46, 22, 35, 43, 55, 32, 20, 31, 29, 43, 36, 30, 23, 23, 57, 38, 34, 34, 28, 34, 31, 22, 33, 26},
	},
	{
		Name:          "Exodus",
		Testament:     OldTestament,
		Abbreviations: []string{"exod", "ex", "exo"},
		VerseCounts:   []int{22, 25, 22, 31, 23, 30, 25, 32, 35, 29, 10, 51, 22, 31, 27, 36, 16, 27, 25, 26, 36, 31, 33, 18, 40, 37, 21, 43, 46, 38, 18, 35, 23, 35, 35, 38, 29, 31, 43, 38},
	},
	{
		Name:          "Leviticus",
		Testament:     OldTestament,
		Abbreviations: []string{"lev", "lv", "le"},
		VerseCounts:   []int{17, 16, 17, 35, 19, 30, 38, 36, 24, 20, 47, 8, 59, 57, 33, 34, 16, 30, 37, 27, 24, 33, 44, 23, 55, 46, 34},
	},
	{
		Name:          "Numbers",
		Testament:     OldTestament,
		Abbreviations: []string{"num", "nm", "nu"},
		VerseCounts:   []int{54, 34, 51, 49, 31, 27, 89, 26, 23, 36, 35, 16, 33, 45, 41, 50, 13, 32, 22, 29, 35, 41, 30, 25, 18, 65, 23, 31, 40, 16, 54, 42, 56, 29, 34, 13},
	},
	{
		Name:          "Deuteronomy",
		Testament:     OldTestament,
		Abbreviations: []string{"deut", "deu", "de", "du", "dt"},
		VerseCounts:   []int{46, 37, 29, 49, 33, 25, 26, 20, 29, 22, 32, 32, 18, 29, 23, 22, 20, 22, 21, 20, 23, 30, 25, 22, 19, 19, 26, 68, 29, 20, 30, 52, 29, 12},
	},
	{
		Name:          "Joshua",
		Testament:     OldTestament,
		Abbreviations: []string{"josh", "jos"},
		VerseCounts:   []int{18, 24, 17, 24, 15, 27, 26, 35, 27, 43, 23, 24, 33, 15, 63, 10, 18, 28, 51, 9, 45, 34, 16, 33},
	},
	{
		Name:          "Judges",
		Testament:     OldTestament,
		Abbreviations: []string{"judg", "jgs", "jdg"},
		VerseCounts:   []int{36, 23, 31, 24, 31, 40, 25, 35, 57, 18, 40, 15, 25, 20, 20, 31, 13, 31, 30, 48, 25},
	},
	{
		Name:          "Ruth",
		Testament:     OldTestament,
		Abbreviations: []string{"ruth", "rut", "ru"},
		VerseCounts:   []int{22, 23, 18, 22},
	},
	{
		Name:          "1 Samuel",
		Testament:     OldTestament,
		Abbreviations: []string{"1sam", "1 sam", "1sm", "1 sm", "1samuel", "1sa", "1 sa"},
		VerseCounts:   []int{28, 36, 21, 22, 12, 21, 17, 22, 27, 27, 15, 25, 23, 52, 35, 23, 58, 30, 24, 42, 15, 23, 29, 22, 44, 25, 12, 25, 11, 31, 13},
	},
	{
		Name:          "2 Samuel",
		Testament:     OldTestament,
		Abbreviations: []string{"2sam", "2 sam", "2sm", "2 sm", "2samuel", "2sa", "2 sa"},
		VerseCounts:   []int{27, 32, 39, 12, 25, 23, 29, 18, 13, 19, 27, 31, 39, 33, 37, 23, 29, 33, 43, 26, 22, 51, 39, 25},
	},
	{
		Name:          "1 Kings",
		Testament:     OldTestament,
		Abbreviations: []string{"1king", "1kg", "1 kg", "1kings", "1ki", "1 ki"},
		VerseCounts:   []int{53, 46, 28, 34, 18, 38, 51, 66, 28, 29, 43, 33, 34, 31, 34, 34, 24, 46, 21, 43, 29, 53},
	},
	{
		Name:          "2 Kings",
		Testament:     OldTestament,
		Abbreviations: []string{"2king", "2kg", "2 kg", "2kings", "2ki", "2 ki"},
		VerseCounts:   []int{18, 25, 27, 44, 27, 33, 20, 29, 37, 36, 21, 21, 25, 29, 38, 20, 41, 37, 37, 21, 26, 20, 37, 20, 30},
	},
	{
		Name:          "1 Chronicles",
		Testament:     OldTestament,
		Abbreviations: []string{"1chron", "1chronicles", "1ch", "1 chron", "1 ch"},
		VerseCounts:   []int{54, 55, 24, 43, 26, 81, 40, 40, 44, 14, 47, 40, 14, 17, 29, 43, 27, 17, 19, 8, 30, 19, 32, 31, 31, 32, 34, 21, 30},
	},
	{
		Name:          "2 Chronicles",
		Testament:     OldTestament,
		Abbreviations: []string{"2chron", "2chronicles", "2ch", "2 chron", "2 ch"},
		VerseCounts:   []int{17, 18, 17, 22, 14, 42, 22, 18, 31, 19, 23, 16, 22, 15, 19, 14, 19, 34, 11, 37, 20, 12, 21, 27, 28, 23, 9, 27, 36, 27, 21, 33, 25, 33, 27, 23},
	},
	{
		Name:          "Ezra",
		Testament:     OldTestament,
		Abbreviations: []string{"ez", "ezr"},
		VerseCounts:   []int{11, 70, 13, 24, 17, 22, 28, 36, 15, 44},
	},
	{
		Name:          "Nehemiah",
		Testament:     OldTestament,
		Abbreviations: []string{"neh", "ne", "nehem"},
		VerseCounts:   []int{11, 20, 32, 23, 19, 19, 73, 18, 38, 39, 36, 47, 31},
	},
	{
		Name:          "Esther",
		Testament:     OldTestament,
		Abbreviations: []string{"esth", "es", "est"},
		VerseCounts:   []int{22, 23, 15, 17, 14, 14, 10, 17, 32, 3},
	},
	{
		Name:          "Job",
		Testament:     OldTestament,
		Abbreviations: []string{"job", "jb"},
		VerseCounts:   []int{22, 13, 26, 21, 27, 30, 21, 22, 35, 22, 20, 25, 28, 22, 35, 22, 16, 21, 29, 29, 34, 30, 17, 25, 6, 14, 23, 28, 25, 31, 40, 22, 33, 37, 16, 33, 24, 41, 30, 24, 34, 17},
	},
	{
		Name:          "Psalms",
		Testament:     OldTestament,
		Abbreviations: []string{"psa", "pss", "psalm", "ps"},
		VerseCounts:   []int{6, 12, 8, 8, 12, 10, 17, 9, 20, 18, 7, 8, 6, 7, 5, 11, 15, 50, 14, 9, 13, 31, 6, 10, 22, 12, 14, 9, 11, 12, 24, 11, 22, 22, 28, 12, 40, 22, 13, 17, 13, 11, 5, 26, 17, 11, 9, 14, 20, 23, 19, 9, 6, 7, 23, 13, 11, 11, 17, 12, 8, 12, 11, 10, 13, 20, 7, 35, 36, 5, 24, 20, 28, 23, 10, 12, 20, 72, 13, 19, 16, 8, 18, 12, 13, 17, 7, 18, 52, 17, 16, 15, 5, 23, 11, 13, 12, 9, 9, 5, 8, 28, 22, 35, 45, 48, 43, 13, 31, 7, 10, 10, 9, 8, 18, 19, 2, 29, 176, 7, 8, 9, 4, 8, 5, 6, 5, 6, 8, 8, 3, 18, 3, 3, 21, 26, 9, 8, 24, 13, 10, 7, 12, 15, 21, 10, 20, 14, 9, 6},
	},
	{
		Name:          "Proverbs",
		Testament:     OldTestament,
		Abbreviations: []string{"prov", "prv", "pv", "pro"},
		VerseCounts:   []int{33, 22, 35, 27, 23, 35, 27, 36, 18, 32, 31, 28, 25, 35, 33, 33, 28, 24, 29, 30, 31, 29, 35, 34, 28, 28, 27, 28, 27, 33, 31},
	},
	{
		Name:          "Ecclesiastes",
		Testament:     OldTestament,
		Abbreviations: []string{"ecc", "ec", "eccles"},
		VerseCounts:   []int{18, 26, 22, 16, 20, 12, 29, 17, 18, 20, 10, 14},
	},
	{
		Name:          "Song of Solomon",
		Testament:     OldTestament,
		Abbreviations: []string{"song", "ss", "so", "sg", "son", "song of sol", "sos"},
		VerseCounts:   []int{17, 17, 11, 16, 16, 13, 13, 14},
	},
	{
		Name:          "Isaiah",
		Testament:     OldTestament,
		Abbreviations: []string{"isa", "is"},
		VerseCounts:   []int{31, 22, 26, 6, 30, 13, 25, 22, 21, 34, 16, 6, 22, 32, 9, 14, 14, 7, 25, 6, 17, 25, 18, 23, 12, 21, 13, 29, 24, 33, 9, 20, 24, 17, 10, 22, 38, 22, 8, 31, 29, 25, 28, 28, 25, 13, 15, 22, 26, 11, 23, 15, 12, 17, 13, 12, 21, 14, 21, 22, 11, 12, 19, 12, 25, 24},
	},
	{
		Name:          "Jeremiah",
		Testament:     OldTestament,
		Abbreviations: []string{"jer", "je", "jerem"},
		VerseCounts:   []int{19, 37, 25, 31, 31, 30, 34, 22, 26, 25, 23, 17, 27, 22, 21, 21, 27, 23, 15, 18, 14, 30, 40, 10, 38, 24, 22, 17, 32, 24, 40, 44, 26, 22, 19, 32, 21, 28, 18, 16, 18, 22, 13, 30, 5, 28, 7, 47, 39, 46, 64, 34},
	},
	{
		Name:          "Lamentations",
		Testament:     OldTestament,
		Abbreviations: []string{"lam", "la", "lamen"},
		VerseCounts:   []int{22, 22, 66, 22, 22},
	},
	{
		Name:          "Ezekiel",
		Testament:     OldTestament,
		Abbreviations: []string{"ezek", "ez", "eze", "ezk"},
		VerseCounts:   []int{28, 10, 27, 17, 17, 14, 27, 18, 11, 22, 25, 28, 23, 23, 8, 63, 24, 32, 14, 49, 32, 31, 49, 27, 17, 21, 36, 26, 21, 26, 18, 32, 33, 31, 15, 38, 28, 23, 29, 49, 26, 20, 27, 31, 25, 24, 23, 35},
	},
	{
		Name:          "Daniel",
		Testament:     OldTestament,
		Abbreviations: []string{"dan", "da", "dn"},
		VerseCounts:   []int{21, 49, 30, 37, 31, 28, 28, 27, 27, 21, 45, 13},
	},
	{
		Name:          "Hosea",
		Testament:     OldTestament,
		Abbreviations: []string{"hos", "ho"},
		VerseCounts:   []int{11, 23, 5, 19, 15, 11, 16, 14, 17, 15, 12, 14, 16, 9},
	},
	{
		Name:          "Joel",
		Testament:     OldTestament,
		Abbreviations: []string{"joel", "jl", "joe"},
		VerseCounts:   []int{20, 32, 21},
	},
	{
		Name:          "Amos",
		Testament:     OldTestament,
		Abbreviations: []string{"amos", "am", "amo"},
		VerseCounts:   []int{15, 16, 15, 13, 27, 14, 17, 14, 15},
	},
	{
		Name:          "Obadiah",
		Testament:     OldTestament,
		Abbreviations: []string{"obad", "ob", "oba"},
		VerseCounts:   []int{21},
	},
	{
		Name:          "Jonah",
		Testament:     OldTestament,
		Abbreviations: []string{"jonah", "jon", "jnh"},
		VerseCounts:   []int{17, 10, 10, 11},
	},
	{
		Name:          "Micah",
		Testament:     OldTestament,
		Abbreviations: []string{"micah", "mi", "mic"},
		VerseCounts:   []int{16, 13, 12, 13, 15, 16, 20},
	},
	{
		Name:          "Nahum",
		Testament:     OldTestament,
		Abbreviations: []string{"nah", "na"},
		VerseCounts:   []int{15, 13, 19},
	},
	{
		Name:          "Habakkuk",
		Testament:     OldTestament,
		Abbreviations: []string{"hab", "hb"},
		VerseCounts:   []int{17, 20, 19},
	},
	{
		Name:          "Zephaniah",
		Testament:     OldTestament,
		Abbreviations: []string{"zeph", "zep"},
		VerseCounts:   []int{18, 15, 20},
	},
	{
		Name:          "Haggai",
		Testament:     OldTestament,
		Abbreviations: []string{"hag", "hg"},
		VerseCounts:   []int{15, 23},
	},
	{
		Name:          "Zechariah",
		Testament:     OldTestament,
		Abbreviations: []string{"zech", "zec"},
		VerseCounts:   []int{21, 13, 10, 14, 11, 15, 14, 23, 17, 12, 17, 14, 9, 21},
	},
	{
		Name:          "Malachi",
		Testament:     OldTestament,
		Abbreviations: []string{"mal", "ml"},
		VerseCounts:   []int{14, 17, 18, 6},
	},
	{
		Name:          "Matthew",
		Testament:     NewTestament,
		Abbreviations: []string{"mat", "matt", "mt"},
		VerseCounts:   []int{25, 23, 17, 25, 48, 34, 29, 34, 38, 42, 30, 50, 58, 36, 39, 28, 27, 35, 30, 34, 46, 46, 39, 51, 46, 75, 66, 20},
	},
	{
		Name:          "Mark",
		Testament:     NewTestament,
		Abbreviations: []string{"mar", "mk"},
		VerseCounts:   []int{45, 28, 35, 41, 43, 56, 37, 38, 50, 52, 33, 44, 37, 72, 47, 20},
	},
	{
		Name:          "Luke",
		Testament:     NewTestament,
		Abbreviations: []string{"luke", "lu", "luk", "lk"},
		VerseCounts:   []int{80, 52, 38, 44, 39, 49, 50, 56, 62, 42, 54, 59, 35, 35, 32, 31, 37, 43, 48, 47, 38, 71, 56, 53},
	},
	{
		Name:          "John",
		Testament:     NewTestament,
		Abbreviations: []string{"john", "jo", "joh", "jn"},
		VerseCounts:   []int{51, 25, 36, 54, 47, 71, 53, 59, 41, 42, 57, 50, 38, 31, 27, 33, 26, 40, 42, 31, 25},
	},
	{
		Name:          "Acts",
		Testament:     NewTestament,
		Abbreviations: []string{"acts", "ac", "act"},
		VerseCounts:   []int{26, 47, 26, 37, 42, 15, 60, 40, 43, 48, 30, 25, 52, 28, 41, 40, 34, 28, 41, 38, 40, 30, 35, 27, 27, 32, 44, 31},
	},
	{
		Name:          "Romans",
		Testament:     NewTestament,
		Abbreviations: []string{"rom", "ro", "rm"},
		VerseCounts:   []int{32, 29, 31, 25, 21, 23, 25, 39, 33, 21, 36, 21, 14, 23, 33, 27},
	},
	{
		Name:          "1 Corinthians",
		Testament:     NewTestament,
		Abbreviations: []string{"1cor", "1c", "1corinthians", "1 co", "1co", "1 cor"},
		VerseCounts:   []int{31, 16, 23, 21, 13, 20, 40, 13, 27, 33, 34, 31, 13, 40, 58, 24},
	},
	{
		Name:          "2 Corinthians",
		Testament:     NewTestament,
		Abbreviations: []string{"2cor", "2c", "2corinthians", "2 co", "2co", "2 cor"},
		VerseCounts:   []int{24, 17, 18, 18, 21, 18, 16, 24, 15, 18, 33, 21, 14},
	},
	{
		Name:          "Galatians",
		Testament:     NewTestament,
		Abbreviations: []string{"gal", "ga"},
		VerseCounts:   []int{24, 21, 29, 31, 26, 18},
	},
	{
		Name:          "Ephesians",
		Testament:     NewTestament,
		Abbreviations: []string{"eph", "ep"},
		VerseCounts:   []int{23, 22, 21, 32, 33, 24},
	},
	{
		Name:          "Philippians",
		Testament:     NewTestament,
		Abbreviations: []string{"phil", "php", "phi"},
		VerseCounts:   []int{30, 30, 21, 23},
	},
	{
		Name:          "Colossians",
		Testament:     NewTestament,
		Abbreviations: []string{"col", "co"},
		VerseCounts:   []int{29, 23, 25, 18},
	},
	{
		Name:          "1 Thessalonians",
		Testament:     NewTestament,
		Abbreviations: []string{"1thes", "1thessalonians", "1thess", "1th", "1 thess", "1 thes", "1 th"},
		VerseCounts:   []int{10, 20, 13, 18, 28},
	},
	{
		Name:          "2 Thessalonians",
		Testament:     NewTestament,
		Abbreviations: []string{"2thes", "2thessalonians", "2thess", "2th", "2 thess", "2 thes", "2 th"},
		VerseCounts:   []int{12, 17, 18},
	},
	{
		Name:          "1 Timothy",
		Testament:     NewTestament,
		Abbreviations: []string{"1tim", "1tm", "1 tm", "1timothy", "1ti", "1 tim", "1 ti"},
		VerseCounts:   []int{20, 15, 16, 16, 25, 21},
	},
	{
		Name:          "2 Timothy",
		Testament:     NewTestament,
		Abbreviations: []string{"2tim", "2tm", "2 tm", "2timothy", "2ti", "2 tim", "2 ti"},
		VerseCounts:   []int{18, 26, 17, 22},
	},
	{
		Name:          "Titus",
		Testament:     NewTestament,
		Abbreviations: []string{"titus", "ti", "tit"},
		VerseCounts:   []int{16, 15, 15},
	},
	{
		Name:          "Philemon",
		Testament:     NewTestament,
		Abbreviations: []string{"philem", "phm"},
		VerseCounts:   []int{25},
	},
	{
		Name:          "Hebrews",
		Testament:     NewTestament,
		Abbreviations: []string{"heb", "he"},
		VerseCounts:   []int{14, 18, 19, 16, 14, 20, 28, 13, 28, 39, 40, 29, 25},
	},
	{
		Name:          "James",
		Testament:     NewTestament,
		Abbreviations: []string{"jam", "ja", "jas"},
		VerseCounts:   []int{27, 26, 18, 17, 20},
	},
	{
		Name:          "1 Peter",
		Testament:     NewTestament,
		Abbreviations: []string{"1pet", "1p", "1pe", "1 pe", "1pt", "1 pet", "1 pt"},
		VerseCounts:   []int{25, 25, 22, 19, 14},
	},
	{
		Name:          "2 Peter",
		Testament:     NewTestament,
		Abbreviations: []string{"2pet", "2p", "2pe", "2 pe", "2pt", "2 pet", "2 pt"},
		VerseCounts:   []int{21, 22, 18},
	},
	{
		Name:          "1 John",
		Testament:     NewTestament,
		Abbreviations: []string{"1john", "1j", "1jo", "1 jo", "1jn", "1 jn"},
		VerseCounts:   []int{10, 29, 24, 21, 21},
	},
	{
		Name:          "2 John",
		Testament:     NewTestament,
		Abbreviations: []string{"2john", "2j", "2jo", "2 jo", "2jn", "2 jn"},
		VerseCounts:   []int{13},
	},
	{
		Name:          "3 John",
		Testament:     NewTestament,
		Abbreviations: []string{"3john", "3j", "3jo", "3 jo", "3jn", "3 jn"},
		VerseCounts:   []int{15},
	},
	{
		Name:          "Jude",
		Testament:     NewTestament,
		Abbreviations: []string{"jude", "ju", "jud"},
		VerseCounts:   []int{25},
	},
	{
		Name:          "Revelation",
		Testament:     NewTestament,
		Abbreviations: []string{"rev", "re", "rv", "revel"},
		VerseCounts:   []int{20, 29, 22, 11, 14, 17, 17, 13, 21, 11, 19, 17, 18, 20, 8, 21, 18, 24, 21, 15, 27, 21},
	},
}
