package library

import "strings"

// SupportedImageExtensions lists the suffixes served as pages.
var SupportedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// IsImage reports whether filename carries a supported image suffix.
// The check is case-insensitive and never touches the disk.
func IsImage(filename string) bool {
	_, ok := SupportedImageExtensions[strings.ToLower(suffix(filename))]
	return ok
}

// ContentType returns the MIME type to serve an image with.
func ContentType(filename string) string {
	switch strings.ToLower(suffix(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	return "application/octet-stream"
}

// suffix returns the final ".ext" of a name. A leading dot (hidden file)
// or a trailing dot does not start a suffix.
func suffix(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// stem is the name without its suffix.
func stem(name string) string {
	return strings.TrimSuffix(name, suffix(name))
}
