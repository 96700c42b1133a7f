package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// extractDOCX parses a .docx document by reading word/document.xml from the
// ZIP archive, emitting one line per paragraph.
func extractDOCX(raw []byte) (string, error) {
	r, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open zip: %w", err)
	}

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var sb strings.Builder
	var currentText strings.Builder
	var inParagraph, inTextRun bool

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				currentText.Reset()
			case "t":
				inTextRun = inParagraph
			}

		case xml.CharData:
			if inTextRun {
				currentText.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				if !inParagraph {
					continue
				}
				inParagraph = false
				if text := strings.TrimSpace(currentText.String()); text != "" {
					sb.WriteString(text)
					sb.WriteByte('\n')
				}
			}
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no text content found in document")
	}
	return sb.String(), nil
}
