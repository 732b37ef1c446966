package translit

// cyrToLat maps Uzbek Cyrillic runes to their Latin spelling.
// Е/е is excluded: its spelling depends on the preceding rune (see ToLatin).
var cyrToLat = map[rune]string{
	'А': "A", 'а': "a",
	'Б': "B", 'б': "b",
	'В': "V", 'в': "v",
	'Г': "G", 'г': "g",
	'Д': "D", 'д': "d",
	'Ё': "Yo", 'ё': "yo",
	'Ж': "J", 'ж': "j",
	'З': "Z", 'з': "z",
	'И': "I", 'и': "i",
	'Й': "Y", 'й': "y",
	'К': "K", 'к': "k",
	'Л': "L", 'л': "l",
	'М': "M", 'м': "m",
	'Н': "N", 'н': "n",
	'О': "O", 'о': "o",
	'П': "P", 'п': "p",
	'Р': "R", 'р': "r",
	'С': "S", 'с': "s",
	'Т': "T", 'т': "t",
	'У': "U", 'у': "u",
	'Ф': "F", 'ф': "f",
	'Х': "X", 'х': "x",
	'Ц': "Ts", 'ц': "ts",
	'Ч': "Ch", 'ч': "ch",
	'Ш': "Sh", 'ш': "sh",
	'Ъ': "'", 'ъ': "'",
	'Ь': "", 'ь': "", // no Latin spelling
	'Э': "E", 'э': "e",
	'Ю': "Yu", 'ю': "yu",
	'Я': "Ya", 'я': "ya",
	'Ў': "O'", 'ў': "o'",
	'Қ': "Q", 'қ': "q",
	'Ғ': "G'", 'ғ': "g'",
	'Ҳ': "H", 'ҳ': "h",
}

// latToCyr maps single Latin letters to Cyrillic. It is consulted only after
// the compound rules ran. E/e is contextual (see ToCyrillic); C/c and W/w
// occur only inside digraphs or foreign words and pass through.
var latToCyr = map[rune]rune{
	'A': 'А', 'a': 'а',
	'B': 'Б', 'b': 'б',
	'D': 'Д', 'd': 'д',
	'F': 'Ф', 'f': 'ф',
	'G': 'Г', 'g': 'г',
	'H': 'Ҳ', 'h': 'ҳ',
	'I': 'И', 'i': 'и',
	'J': 'Ж', 'j': 'ж',
	'K': 'К', 'k': 'к',
	'L': 'Л', 'l': 'л',
	'M': 'М', 'm': 'м',
	'N': 'Н', 'n': 'н',
	'O': 'О', 'o': 'о',
	'P': 'П', 'p': 'п',
	'Q': 'Қ', 'q': 'қ',
	'R': 'Р', 'r': 'р',
	'S': 'С', 's': 'с',
	'T': 'Т', 't': 'т',
	'U': 'У', 'u': 'у',
	'V': 'В', 'v': 'в',
	'X': 'Х', 'x': 'х',
	'Y': 'Й', 'y': 'й',
	'Z': 'З', 'z': 'з',
}

// Rule is a single Latin to Cyrillic substitution.
type Rule struct {
	Pattern     string
	Replacement string
}

// compoundTiers lists the Latin to Cyrillic compound rules in precedence
// order. Patterns inside one tier never overlap each other, so a tier is
// applied in one scan; a later tier only sees the Latin text earlier tiers
// left untouched.
var compoundTiers = [][]Rule{
	// yo'q is an idiom: it must win over the o' digraph.
	{
		{"yo'q", "йўқ"}, {"Yo'q", "Йўқ"},
	},
	// ў and ғ in all four apostrophe spellings, then sh and ch.
	{
		{"o'", "ў"}, {"g'", "ғ"}, {"O'", "Ў"}, {"G'", "Ғ"},
		{"o‘", "ў"}, {"g‘", "ғ"}, {"O‘", "Ў"}, {"G‘", "Ғ"},
		{"o’", "ў"}, {"g’", "ғ"}, {"O’", "Ў"}, {"G’", "Ғ"},
		{"o`", "ў"}, {"g`", "ғ"}, {"O`", "Ў"}, {"G`", "Ғ"},
		{"sh", "ш"}, {"Sh", "Ш"}, {"SH", "Ш"},
		{"ch", "ч"}, {"Ch", "Ч"}, {"CH", "Ч"},
	},
	// Iotated vowels and ts. Runs after o' so that "yo'l" reads й-ў-л,
	// and after sh so that "tsh" never becomes ц-ҳ.
	{
		{"yo", "ё"}, {"yu", "ю"}, {"ya", "я"}, {"ye", "е"},
		{"Yo", "Ё"}, {"Yu", "Ю"}, {"Ya", "Я"}, {"Ye", "Е"},
		{"YO", "Ё"}, {"YU", "Ю"}, {"YA", "Я"}, {"YE", "Е"},
		{"ts", "ц"}, {"Ts", "Ц"}, {"TS", "Ц"},
	},
}

// CompoundRules returns the Latin to Cyrillic compound rules in the order
// they are applied.
func CompoundRules() []Rule {
	var rules []Rule
	for _, tier := range compoundTiers {
		rules = append(rules, tier...)
	}
	return rules
}

// cyrillicVowels are the Uzbek Cyrillic vowels after which е is written "ye".
var cyrillicVowels = map[rune]bool{
	'А': true, 'а': true,
	'О': true, 'о': true,
	'У': true, 'у': true,
	'И': true, 'и': true,
	'Э': true, 'э': true,
	'Ю': true, 'ю': true,
	'Я': true, 'я': true,
	'Ё': true, 'ё': true,
	'Е': true, 'е': true,
	'Ў': true, 'ў': true,
}
