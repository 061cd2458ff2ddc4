package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"
)

// printPage is the hard-copy layout handed to the browser's print dialog.
// The page title carries the certificate number so the printed/exported file
// is named after it.
var printPage = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Number}}</title>
<style>
body { font-family: Georgia, serif; color: #000; max-width: 52rem; margin: 0 auto; padding: 3rem; }
.letterhead { text-align: center; }
.letterhead p { margin: 0; font-size: 0.9rem; }
.office { border-top: 2px solid #000; border-bottom: 2px solid #000; text-align: center; font-weight: bold; margin: 1rem 0 2rem; padding: 0.2rem 0; }
h1 { text-align: center; letter-spacing: 0.2em; }
h2 { text-align: center; font-weight: normal; }
.control { text-align: right; font-size: 0.9rem; }
.body p { text-align: justify; line-height: 1.6; }
.verify { display: flex; gap: 4rem; justify-content: center; margin-top: 2rem; }
.verify div { text-align: center; }
.verify .line { border-bottom: 1px solid #000; min-width: 16rem; padding-bottom: 0.2rem; }
.signer { text-align: center; margin-top: 4rem; }
.signer .name { font-weight: bold; font-size: 1.1rem; }
.footer { margin-top: 2rem; font-size: 0.9rem; font-style: italic; color: #444; }
@media print { body { padding: 2rem; } }
</style>
</head>
<body>
<div class="letterhead">
{{range .Letterhead}}<p>{{.}}</p>
{{end}}</div>
<div class="office">{{.OfficeLine}}</div>
<h1>{{.Title}}</h1>
{{if .Subtitle}}<h2>{{.Subtitle}}</h2>{{end}}
{{if .ControlLine}}<p class="control">{{.ControlLine}}</p>{{end}}
<p><strong>{{.Salutation}}</strong></p>
<div class="body">
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}</div>
{{with .Verification}}<p><strong>{{.Heading}}</strong></p>
<div class="verify">
{{range .Lines}}<div><div class="line">{{.Name}}</div><p>{{.Role}}</p></div>
{{end}}</div>
{{end}}{{if .ApprovedHeading}}<p><strong>{{.ApprovedHeading}}</strong></p>{{end}}
<div class="signer">
<p class="name">{{.SignerName}}</p>
<p>{{.SignerTitle}}</p>
</div>
<div class="footer">
{{range .FooterNotes}}<p>{{.}}</p>
{{end}}</div>
</body>
</html>
`))

// RenderHTML produces the paginated print representation of a view.
func RenderHTML(view *DocumentView) ([]byte, error) {
	if view == nil {
		return nil, errors.New("nothing to render")
	}
	var buf bytes.Buffer
	if err := printPage.Execute(&buf, view); err != nil {
		return nil, errors.Wrap(err, "render print page")
	}
	return buf.Bytes(), nil
}

// Fingerprint hashes a view into a strong ETag. Issued certificates are
// immutable, so equal fingerprints imply identical print output.
func Fingerprint(view *DocumentView) string {
	serialized, err := json.Marshal(view)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(`"xxh3-%016x"`, xxh3.Hash(serialized))
}
