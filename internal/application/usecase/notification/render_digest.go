package notification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// Digest is a rendered due-items email.
type Digest struct {
	Subject string
	HTML    string
	Text    string
}

const digestHTMLSource = `<h2>Items due in the next {{.WindowDays}} days</h2>
<table border="1" cellpadding="6" cellspacing="0">
<tr><th>Type</th><th>Title</th><th>Due date</th><th>Details</th></tr>
{{range .Items}}<tr><td>{{.Kind}}</td><td>{{.Title}}</td><td>{{.DueDate}}</td><td>{{.Extra}}</td></tr>
{{end}}</table>
`

const digestTextSource = `Items due in the next {{.WindowDays}} days:

{{range .Items}}- [{{.Kind}}] {{.Title}} (due {{.DueDate}}) {{.Extra}}
{{end}}`

var digestHTML = htmltemplate.Must(htmltemplate.New("due_digest").Parse(digestHTMLSource))
var digestText = texttemplate.Must(texttemplate.New("due_digest").Parse(digestTextSource))

type digestItemData struct {
	Kind    string
	Title   string
	DueDate string
	Extra   string
}

type digestData struct {
	WindowDays int
	Items      []digestItemData
}

// RenderDigest formats the due items as a single email with an HTML table
// and a plain-text fallback. html/template escapes the item fields.
func RenderDigest(items []entity.DueItem, now time.Time) (*Digest, error) {
	data := digestData{
		WindowDays: AlertWindowDays,
		Items:      make([]digestItemData, 0, len(items)),
	}
	for _, item := range items {
		data.Items = append(data.Items, digestItemData{
			Kind:    kindLabel(item.Kind),
			Title:   item.Title,
			DueDate: item.DueDate.Format("2006-01-02"),
			Extra:   item.Extra,
		})
	}

	var htmlBuf bytes.Buffer
	if err := digestHTML.Execute(&htmlBuf, data); err != nil {
		return nil, fmt.Errorf("render digest html: %w", err)
	}

	var textBuf bytes.Buffer
	if err := digestText.Execute(&textBuf, data); err != nil {
		return nil, fmt.Errorf("render digest text: %w", err)
	}

	return &Digest{
		Subject: fmt.Sprintf("Due items digest: %d item(s) due by %s",
			len(items), now.AddDate(0, 0, AlertWindowDays).Format("2006-01-02")),
		HTML: htmlBuf.String(),
		Text: textBuf.String(),
	}, nil
}

func kindLabel(kind entity.DueItemKind) string {
	switch kind {
	case entity.DueItemTransaction:
		return "Transaction"
	case entity.DueItemActivity:
		return "Activity"
	default:
		return string(kind)
	}
}
