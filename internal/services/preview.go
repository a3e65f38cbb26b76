package services

import (
	"os"
	"path/filepath"
	"strings"
)

const previewLimit = 5000

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".webp": true,
}

// extractText returns a short text preview of an uploaded file. Plain-text
// formats are read directly; binary formats get a placeholder since parsing
// them is not worth a dependency for a review preview.
func extractText(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".txt" || ext == ".csv":
		data, err := os.ReadFile(path)
		if err != nil {
			return ""
		}
		if len(data) > previewLimit {
			data = data[:previewLimit]
		}
		return string(data)
	case imageExts[ext]:
		return "[Image file]"
	case ext == ".pdf" || ext == ".docx":
		return "[" + strings.TrimPrefix(ext, ".") + " document]"
	}
	return ""
}
