package resume

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/yoockh/careercounsel/internal/utils"
)

const MaxUploadSize = 10 << 20

// ExtractText returns the plain text of a PDF or plain-text resume.
func ExtractText(data []byte) (string, error) {
	const op = "resume.ExtractText"

	switch ct := http.DetectContentType(data); {
	case ct == "application/pdf":
		r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return "", utils.E(utils.CodeInvalidArgument, op, "unreadable pdf", err)
		}
		var b strings.Builder
		for i := 1; i <= r.NumPage(); i++ {
			page := r.Page(i)
			if page.V.IsNull() {
				continue
			}
			text, _ := page.GetPlainText(nil)
			b.WriteString(text)
			b.WriteByte('\n')
		}
		return b.String(), nil
	case strings.HasPrefix(ct, "text/plain"):
		return string(data), nil
	default:
		return "", utils.E(utils.CodeInvalidArgument, op, "resume must be a pdf or plain text file", nil)
	}
}
