package source

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// BaseName derives a file-name stem for src: the file or URL base name
// without extension, or "image-<i>" for payloads that carry no name.
func BaseName(src string, i int) string {
	var base string
	switch {
	case strings.HasPrefix(src, SchemeHTTP), strings.HasPrefix(src, SchemeHTTPS):
		if u, err := url.Parse(src); err == nil {
			base = path.Base(u.Path)
		}
	case strings.HasPrefix(src, SchemeBase64):
		// no name
	default:
		base = filepath.Base(strings.TrimPrefix(src, SchemeFile))
	}
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" || base == "." || base == "/" {
		return fmt.Sprintf("image-%d", i)
	}

	return base
}
