package table

import (
	"archive/zip"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// docxLoader yields one row per non-empty paragraph of a Word document.
type docxLoader struct{}

func (docxLoader) CanLoad(path string) bool { return hasExt(path, ".docx") }

func (docxLoader) Load(path string, opt Options) (*Table, error) { return ReadDOCX(path, opt) }

var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	lineBreak    = regexp.MustCompile(`<w:(br|cr)\s*/>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
	xmlEntities  = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")
)

// ReadDOCX loads the paragraphs of a .docx file into a one-column table.
func ReadDOCX(path string, opt Options) (*Table, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, &BadPathError{Path: path, Err: fmt.Errorf("open docx: %w", err)}
	}
	defer zr.Close()
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, &BadPathError{Path: path, Err: fmt.Errorf("open document.xml: %w", err)}
		}
		docXML, err = io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, &BadPathError{Path: path, Err: fmt.Errorf("read document.xml: %w", err)}
		}
		break
	}
	if len(docXML) == 0 {
		return nil, &BadPathError{Path: path, Err: fmt.Errorf("document.xml not found in DOCX")}
	}
	return linesTable(path, docxParagraphs(string(docXML)), opt)
}

// docxParagraphs strips markup from document.xml, keeping one string per
// paragraph. Soft line breaks inside a paragraph become spaces.
func docxParagraphs(doc string) []string {
	parts := paragraphEnd.Split(doc, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = lineBreak.ReplaceAllString(p, " ")
		p = xmlEntities.Replace(xmlTag.ReplaceAllString(p, ""))
		out = append(out, strings.Join(strings.Fields(p), " "))
	}
	return out
}
