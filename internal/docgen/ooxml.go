package docgen

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// xmlEscape escapes text for inclusion in hand-built OOXML markup.
func xmlEscape(s string) string {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(s)); err != nil {
		return ""
	}
	return sb.String()
}

// part is one file inside an OOXML package.
type part struct {
	name    string
	content string
}

// writePackage writes the parts as a zip archive. OOXML packages are plain
// zip files; every part gets the standard XML declaration prepended.
func writePackage(w io.Writer, parts []part) error {
	zw := zip.NewWriter(w)

	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("create part %s: %w", p.name, err)
		}
		if _, err := io.WriteString(f, xml.Header); err != nil {
			return fmt.Errorf("write part %s: %w", p.name, err)
		}
		if _, err := io.WriteString(f, p.content); err != nil {
			return fmt.Errorf("write part %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close package: %w", err)
	}
	return nil
}
