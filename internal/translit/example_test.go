package translit_test

import (
	"fmt"

	"codeberg.org/snonux/kirlot/internal/translit"
)

func ExampleTransliterator_ToLatin() {
	tr := translit.New()
	fmt.Println(tr.ToLatin("Ўзбекистон"))
	fmt.Println(tr.ToLatin("Бу ер поезд бекати."))
	// Output:
	// O'zbekiston
	// Bu yer poyezd bekati.
}

func ExampleTransliterator_ToCyrillic() {
	tr := translit.New()
	fmt.Println(tr.ToCyrillic("Yo'q, bu mashq emas."))
	fmt.Println(tr.ToCyrillic("ro‘yobga"))
	// Output:
	// Йўқ, бу машқ эмас.
	// рўёбга
}
