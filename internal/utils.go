package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/gosimple/slug"

	"codeberg.org/snonux/kirlot/internal/translit"
)

// GenerateEntryID creates a unique ID for a history entry based on the
// current time and the source text.
// Format: epochMillis_md5(source)[:8]
func GenerateEntryID(source string) string {
	epochMillis := time.Now().UnixMilli()

	hash := md5.Sum([]byte(source))
	hashStr := hex.EncodeToString(hash[:])[:8]

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}

// SanitizeFilename creates a safe ASCII filename from a string. Cyrillic is
// transliterated to Latin first so that "Тошкент" becomes "toshkent" rather
// than an empty slug.
func SanitizeFilename(s string) string {
	name := slug.Make(translit.ToLatin(s))
	if name == "" {
		return "untitled"
	}
	return name
}
