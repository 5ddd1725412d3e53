package cache

import (
	"fmt"
	"strings"
)

var keyReplacer = strings.NewReplacer(
	"://", "__",
	"/", "&",
	".", "_",
)

// DeriveKey turns a URL into a file name.
//
// The scheme separator and path separators are substituted and characters that are not
// safe in file names are percent-encoded. Two URLs that differ only in a substituted
// character (for example "." versus "_") map to the same key.
func DeriveKey(rawURL string) string {
	replaced := keyReplacer.Replace(rawURL)

	var b strings.Builder
	b.Grow(len(replaced))
	for i := 0; i < len(replaced); i++ {
		c := replaced[i]
		if strings.IndexByte(`?*:"<>|\%`, c) >= 0 || c < 0x20 || c == 0x7f {
			fmt.Fprintf(&b, "%%%02X", c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Owned reports whether name is a key this package writes: the state directory
// snapshot or a key derived from an absolute URL.
func Owned(name string) bool {
	return name == StateDirectoryKey || strings.Contains(name, "__")
}
