// Package archive serializes an exported file set into a zip archive.
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/supermodeltools/bizsite/internal/bizsite/export"
)

// epoch is the modification time stamped on every entry so archives of
// identical file sets are identical.
var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// ValidatePath rejects paths that are absolute, use backslashes or escape
// the archive root.
func ValidatePath(p string) error {
	switch {
	case p == "":
		return errors.New("empty path")
	case strings.HasPrefix(p, "/"):
		return fmt.Errorf("path %q has a leading slash", p)
	case strings.Contains(p, `\`):
		return fmt.Errorf("path %q is not forward-slash separated", p)
	case path.Clean(p) != p || p == ".." || strings.HasPrefix(p, "../"):
		return fmt.Errorf("path %q is not clean", p)
	}
	return nil
}

// WriteZip writes files to w as a deflate-compressed zip archive.
func WriteZip(w io.Writer, files []export.File) error {
	zw := zip.NewWriter(w)
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if err := ValidatePath(f.Path); err != nil {
			return err
		}
		if seen[f.Path] {
			return fmt.Errorf("duplicate path %q", f.Path)
		}
		seen[f.Path] = true

		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Path,
			Method:   zip.Deflate,
			Modified: epoch,
		})
		if err != nil {
			return fmt.Errorf("creating %s: %w", f.Path, err)
		}
		if _, err := io.WriteString(fw, f.Content); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	return nil
}

// ToZip returns the archive as a byte slice.
func ToZip(files []export.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteZip(&buf, files); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
