package mimetypes

import (
	"mime"
	"strings"
)

type MIME string

const (
	Unknown      MIME = "unknown"
	TextPlain    MIME = "text/plain"
	TextMarkdown MIME = "text/markdown"
	TextRTF      MIME = "text/rtf"

	ApplicationPDF         MIME = "application/pdf"
	ApplicationOctetStream MIME = "application/octet-stream"
)

// Parse strips the parameters of a detected MIME type, Unknown when unparsable.
func Parse(detected string) MIME {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown
	}
	return MIME(mt)
}

func Matches(detected string, expected MIME) bool {
	return Parse(detected) == expected
}

// IsText reports whether detected belongs to the text/* family a case report can be read from.
func IsText(detected string) bool {
	return strings.HasPrefix(string(Parse(detected)), "text/")
}
