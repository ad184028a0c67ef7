package converter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// ConvertMarkdownToPDF renders markdown into an A4 portrait document at pdfPath
func ConvertMarkdownToPDF(markdown []byte, pdfPath string) error {
	if !strings.EqualFold(filepath.Ext(pdfPath), ".pdf") {
		return fmt.Errorf("output file must have .pdf extension: %s", pdfPath)
	}

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(markdown); err != nil {
		return fmt.Errorf("renderer.Process(%s) > %w", pdfPath, err)
	}
	return nil
}
