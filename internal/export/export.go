// Package export renders the generated documents into downloadable bytes.
// Every renderer is a pure function: same document in, identical bytes out,
// and all of them accept partially-empty documents without failing.
package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strings"
)

// Download metadata for the three artifact types.
const (
	SlidesMIME     = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	PosterMIME     = "application/pdf"
	AssignmentMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	SlidesFilename            = "slides.pptx"
	PosterFilename            = "poster.pdf"
	AssignmentStudentFilename = "assignment_student.docx"
	AssignmentKeyFilename     = "assignment_key.docx"
)

// Attribution appears in the footer of every exported artifact.
const Attribution = "Generated by ClassKit Studio - Educational Use Only"

type zipPart struct {
	name string
	data string
}

// writeArchive packs OOXML parts in a fixed order with zeroed timestamps so
// repeated renders of the same document are byte-identical.
func writeArchive(parts []zipPart) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   p.name,
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(p.data)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func esc(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
