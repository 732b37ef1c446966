package translit

import (
	"strings"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// ToLatin
// ---------------------------------------------------------------------------

func TestToLatin(t *testing.T) {
	t.Parallel()

	tr := New()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"country name", "Ўзбекистон", "O'zbekiston"},
		{"greeting", "Ассалому алайкум", "Assalomu alaykum"},
		{"capital", "Тошкент", "Toshkent"},
		{"sh digraph", "шаҳар", "shahar"},
		{"ch digraph", "чой", "choy"},
		{"all caps digraph", "ЧОЙ", "ChOY"},
		{"ts", "цирк", "tsirk"},
		{"ts title", "Цирк", "Tsirk"},
		{"hard sign", "маъно", "ma'no"},
		{"soft sign dropped", "компьютер", "kompyuter"},
		{"g breve", "ғалаба", "g'alaba"},
		{"o breve and q", "қўшиқ", "qo'shiq"},
		{"e reversed", "Эркин", "Erkin"},
		{"iotated yo", "Ёшлик", "Yoshlik"},
		{"h", "Ҳа", "Ha"},

		// -- Contextual Е --

		{"e at string start", "ер", "yer"},
		{"E at string start", "Ер", "Yer"},
		{"E word start", "Европа", "Yevropa"},
		{"e after vowel", "поезд", "poyezd"},
		{"e after consonant", "бекат", "bekat"},
		{"e after space", "бу ер", "bu yer"},
		{"e after paren", "(ер)", "(yer)"},
		{"e after double quote", `"ер"`, `"yer"`},
		{"e after hyphen", "кўк-ер", "ko'k-yer"},
		{"e after newline", "салом\nер", "salom\nyer"},
		{"e after hard sign", "инъекция", "in'ektsiya"},
		{"E after consonant caps", "ЎЗБЕКИСТОН", "O'ZBEKISTON"},

		// -- Pass-through --

		{"digits", "2024 йил", "2024 yil"},
		{"already latin", "salom dunyo", "salom dunyo"},
		{"cjk", "中文", "中文"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tr.ToLatin(tt.input); got != tt.want {
				t.Errorf("ToLatin(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// ToCyrillic
// ---------------------------------------------------------------------------

func TestToCyrillic(t *testing.T) {
	t.Parallel()

	tr := New()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"country name", "O'zbekiston", "Ўзбекистон"},
		{"greeting", "Assalomu alaykum", "Ассалому алайкум"},
		{"capital", "Toshkent", "Тошкент"},
		{"sh before s h", "mashq", "машқ"},
		{"sh title", "Shahar", "Шаҳар"},
		{"sh caps", "SHAHAR", "ШАҲАР"},
		{"ch", "choy", "чой"},
		{"ts", "tsirk", "цирк"},
		{"iotated caps", "YANGI", "ЯНГИ"},
		{"iotated title", "Yangi", "Янги"},
		{"two digraphs caps", "O'G'IL", "ЎҒИЛ"},

		// -- Idiom and o' precedence --

		{"idiom title", "Yo'q", "Йўқ"},
		{"idiom lower", "yo'q", "йўқ"},
		{"o' before yo", "yo'l", "йўл"},

		// -- Apostrophe variants --

		{"straight", "ro'yobga", "рўёбга"},
		{"left curly", "ro‘yobga", "рўёбга"},
		{"right curly", "ro’yobga", "рўёбга"},
		{"backtick", "ro`yobga", "рўёбга"},
		{"curly o lower", "o‘zbek", "ўзбек"},
		{"curly O upper", "O‘zbek", "Ўзбек"},
		{"curly g", "g‘oz", "ғоз"},
		{"straight hard sign", "ma'no", "маъно"},
		{"curly hard sign", "ma’no", "маъно"},
		{"curly quotes kept", "‘salom’", "‘салом’"},

		// -- Contextual e --

		{"e word start", "ekran", "экран"},
		{"e mid word", "bekat", "бекат"},
		{"E word start", "Eshik", "Эшик"},
		{"ye", "poyezd", "поезд"},
		{"Ye", "Yevropa", "Европа"},
		{"e after space", "yangi ertak", "янги эртак"},
		{"e after hard sign", "in'ektsiya", "инъекция"},
		{"e after hard sign short", "s'ezd", "съезд"},
		{"e after apostrophe mid-word", "ta'e", "таъе"},
		{"e after opening quote", "'ekran'", "ъэкранъ"},
		{"e start then hard sign", "e'tibor", "эътибор"},
		{"hard sign after e", "she'r", "шеър"},

		// -- Pass-through --

		{"digits", "2024 yil", "2024 йил"},
		{"already cyrillic", "салом", "салом"},
		{"no counterpart", "www", "www"},
		{"cjk", "中文", "中文"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tr.ToCyrillic(tt.input); got != tt.want {
				t.Errorf("ToCyrillic(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Round trips and lossy conversions
// ---------------------------------------------------------------------------

func TestRoundTripCyrillic(t *testing.T) {
	t.Parallel()

	tr := New()
	words := []string{
		"Ўзбекистон", "Тошкент", "салом", "китоб", "шаҳар", "Ёшлик",
		"ғалаба", "юрт", "ер", "Европа", "поезд", "цирк", "маъно", "қўшиқ",
		"Эркин", "чой", "ўқитувчи", "ЎЗБЕКИСТОН", "ШАҲАР", "оила", "янги",
		"бу ер", "инъекция", "эътибор", "шеър", "съезд", "Ассалому алайкум",
	}

	for _, w := range words {
		lat := tr.ToLatin(w)
		if got := tr.ToCyrillic(lat); got != w {
			t.Errorf("round trip %q -> %q -> %q", w, lat, got)
		}
	}
}

func TestLossyConversions(t *testing.T) {
	t.Parallel()

	tr := New()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"soft sign is dropped", "компьютер", "компютер"},
		{"mid-word э reads back as е", "поэма", "поема"},
	}

	for _, tt := range tests {
		if got := tr.ToCyrillic(tr.ToLatin(tt.input)); got != tt.want {
			t.Errorf("%s: round trip of %q = %q, want %q", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestApostropheCanonicalization(t *testing.T) {
	t.Parallel()

	tr := New()
	for _, in := range []string{"o'zbek", "o‘zbek", "o’zbek", "o`zbek"} {
		if got := tr.ToLatin(tr.ToCyrillic(in)); got != "o'zbek" {
			t.Errorf("ToLatin(ToCyrillic(%q)) = %q, want %q", in, got, "o'zbek")
		}
	}
}

func TestPassThrough(t *testing.T) {
	t.Parallel()

	tr := New()
	inputs := []string{"12345", "中文字符", "😀", "١٢٣", "  \t\n", "3.14, 2.71!"}

	for _, in := range inputs {
		if got := tr.ToLatin(in); got != in {
			t.Errorf("ToLatin(%q) = %q, want unchanged", in, got)
		}
		if got := tr.ToCyrillic(in); got != in {
			t.Errorf("ToCyrillic(%q) = %q, want unchanged", in, got)
		}
	}
}

// ---------------------------------------------------------------------------
// Tables
// ---------------------------------------------------------------------------

func TestCompoundRulesOrder(t *testing.T) {
	t.Parallel()

	rules := CompoundRules()
	index := make(map[string]int, len(rules))
	for i, r := range rules {
		index[r.Pattern] = i
	}

	before := [][2]string{
		{"yo'q", "o'"},
		{"Yo'q", "O'"},
		{"o'", "yo"},
		{"sh", "ts"},
		{"ch", "ts"},
	}
	for _, pair := range before {
		if index[pair[0]] >= index[pair[1]] {
			t.Errorf("rule %q must precede %q", pair[0], pair[1])
		}
	}
}

func TestGlyphMapCoversAlphabet(t *testing.T) {
	t.Parallel()

	alphabet := "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЪЬЭЮЯЎҚҒҲ"
	for _, r := range alphabet + strings.ToLower(alphabet) {
		if r == 'Е' || r == 'е' {
			continue
		}
		if _, ok := cyrToLat[r]; !ok {
			t.Errorf("cyrToLat missing %q", r)
		}
	}
}

// ---------------------------------------------------------------------------
// Directions
// ---------------------------------------------------------------------------

func TestParseDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{"latin", Latin, false},
		{"LOTIN", Latin, false},
		{"cyrillic", Cyrillic, false},
		{"kril", Cyrillic, false},
		{" auto ", Auto, false},
		{"", Auto, false},
		{"greek", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestConvertAuto(t *testing.T) {
	t.Parallel()

	tr := New()
	if got := tr.Convert("Ўзбекистон", Auto); got != "O'zbekiston" {
		t.Errorf("Convert(cyrillic, Auto) = %q", got)
	}
	if got := tr.Convert("O'zbekiston", Auto); got != "Ўзбекистон" {
		t.Errorf("Convert(latin, Auto) = %q", got)
	}
	if got := tr.Convert("12345", Auto); got != "12345" {
		t.Errorf("Convert(digits, Auto) = %q", got)
	}
	if got := Resolve(Auto, "12345"); got != Latin {
		t.Errorf("Resolve(Auto, digits) = %q, want %q", got, Latin)
	}
}

func TestPackageFunctions(t *testing.T) {
	t.Parallel()

	if got := ToLatin("Ўзбекистон"); got != "O'zbekiston" {
		t.Errorf("ToLatin = %q", got)
	}
	if got := ToCyrillic("O'zbekiston"); got != "Ўзбекистон" {
		t.Errorf("ToCyrillic = %q", got)
	}
}

func TestInvalidUTF8PassThrough(t *testing.T) {
	t.Parallel()

	tr := New()
	tests := []struct {
		name      string
		input     string
		wantLatin string
		wantCyr   string
	}{
		{"lone byte", "\xff", "\xff", "\xff"},
		{"inside cyrillic", "са\xffлом", "sa\xfflom", "са\xffлом"},
		{"inside latin", "sa\xfelom", "sa\xfelom", "са\xfeлом"},
		{"truncated sequence", "ер\xd1", "yer\xd1", "ер\xd1"},
		{"before e", "\x80ekran", "\x80ekran", "\x80екран"},
		{"replacement char kept", "\uFFFDер", "\uFFFDer", "\uFFFDер"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tr.ToLatin(tt.input); got != tt.wantLatin {
				t.Errorf("ToLatin(%q) = %q, want %q", tt.input, got, tt.wantLatin)
			}
			if got := tr.ToCyrillic(tt.input); got != tt.wantCyr {
				t.Errorf("ToCyrillic(%q) = %q, want %q", tt.input, got, tt.wantCyr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Concurrent safety
// ---------------------------------------------------------------------------

func TestConcurrentSafety(t *testing.T) {
	t.Parallel()

	tr := New()
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := tr.ToLatin("Ўзбекистон"); got != "O'zbekiston" {
				t.Errorf("ToLatin = %q", got)
			}
			if got := tr.ToCyrillic("ro’yobga"); got != "рўёбга" {
				t.Errorf("ToCyrillic = %q", got)
			}
		}()
	}
	wg.Wait()
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

func BenchmarkToLatin(b *testing.B) {
	tr := New()
	input := strings.Repeat("Ўзбекистон Республикаси пойтахти Тошкент шаҳри. ", 100)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for b.Loop() {
		tr.ToLatin(input)
	}
}

func BenchmarkToCyrillic(b *testing.B) {
	tr := New()
	input := strings.Repeat("O'zbekiston Respublikasi poytaxti Toshkent shahri. ", 100)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for b.Loop() {
		tr.ToCyrillic(input)
	}
}
