package export

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-pdf/fpdf"
)

// Artifact is a rendered plan on local disk. Callers must Release it once
// the bytes have been sent.
type Artifact struct {
	path string
	once sync.Once
	err  error
}

func (a *Artifact) Path() string { return a.path }

func (a *Artifact) Open() (io.ReadCloser, error) {
	return os.Open(a.path)
}

// Release deletes the file. Calling it again is a no-op.
func (a *Artifact) Release() error {
	a.once.Do(func() {
		if err := os.Remove(a.path); err != nil && !os.IsNotExist(err) {
			a.err = err
		}
	})
	return a.err
}

// RenderPDF writes doc to a new temp file under dir (os.TempDir when empty).
func RenderPDF(doc PlanDocument, dir string) (*Artifact, error) {
	f, err := os.CreateTemp(dir, "career_plan_*.pdf")
	if err != nil {
		return nil, err
	}
	path := f.Name()
	_ = f.Close()

	pdf := newPlanPDF()
	writePlan(pdf, doc)
	if err := pdf.OutputFileAndClose(path); err != nil {
		_ = os.Remove(path)
		return nil, err
	}
	return &Artifact{path: path}, nil
}

func newPlanPDF() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 15)
		pdf.CellFormat(0, 10, "Career Counselor - Career Plan", "", 1, "C", false, 0, "")
		pdf.Ln(6)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	return pdf
}

func writePlan(pdf *fpdf.Fpdf, doc PlanDocument) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 10, "Generated on: "+doc.GeneratedOn, "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 10, tr(doc.Greeting), "", 1, "L", false, 0, "")
	pdf.MultiCell(0, 5, tr(doc.Intro), "", "L", false)

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	sectionTitle(pdf, "Career Overview")
	body(pdf, tr(doc.Overview))

	sectionTitle(pdf, "Key Details")
	pdf.SetFont("Helvetica", "", 11)
	for _, f := range doc.Facts {
		pdf.CellFormat(0, 5, tr(f.Label+": "+f.Value), "", 1, "L", false, 0, "")
	}

	pdf.Ln(5)
	sectionTitle(pdf, "Required Skills")
	bullets(pdf, tr, doc.Skills)

	pdf.Ln(5)
	sectionTitle(pdf, "Your Career Roadmap")
	body(pdf, "Follow these steps to build your career in this field:")
	for _, s := range doc.Roadmap {
		roadmapStep(pdf, tr, s)
	}

	pdf.Ln(5)
	sectionTitle(pdf, "Recommended Next Steps")
	body(pdf, "To get started on your career journey, I recommend the following actions:")
	bullets(pdf, tr, doc.NextSteps)
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(200, 220, 255)
	pdf.CellFormat(0, 6, title, "", 1, "L", true, 0, "")
	pdf.Ln(4)
}

func body(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5, text, "", "L", false)
	pdf.Ln(-1)
}

func bullets(pdf *fpdf.Fpdf, tr func(string) string, items []string) {
	pdf.SetFont("Helvetica", "", 11)
	for _, it := range items {
		pdf.CellFormat(10, 5, "-", "", 0, "C", false, 0, "")
		pdf.MultiCell(0, 5, tr(it), "", "L", false)
	}
}

func roadmapStep(pdf *fpdf.Fpdf, tr func(string) string, s PlanStep) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(100, 150, 255)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(10, 10, fmt.Sprint(s.Number), "", 0, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, tr(s.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(10, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Duration: "+s.Duration), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(10, 5, "", "", 0, "L", false, 0, "")
	pdf.MultiCell(0, 5, tr(s.Description), "", "L", false)
	pdf.Ln(5)
}
