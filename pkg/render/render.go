// Package render maps a resume document to one of the four fixed HTML
// layouts. Rendering is pure: the same document always yields the same
// markup, and nothing here mutates the input.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/junaifcp/swift-resume/pkg/resume"
)

// RegionID marks the printable region in the rendered document. The export
// worker prints exactly this element.
const RegionID = "resume-preview"

var layouts = template.Must(template.New("resume").Funcs(template.FuncMap{
	"safeURL": func(s string) template.URL { return template.URL(s) },
	"alignCSS": func(a resume.HeaderAlignment) string {
		switch a {
		case resume.AlignCenter:
			return "center"
		case resume.AlignRight:
			return "right"
		}
		return "left"
	},
}).Parse(sharedBlocks + templateA + templateB + templateC + templateD + documentShell))

// HTML renders the layout selected by the resume's template id. Unknown
// template ids are normalized to the default before dispatch.
func HTML(r resume.Resume) (string, error) {
	r = resume.Normalize(r)

	var body bytes.Buffer
	if err := layouts.ExecuteTemplate(&body, string(r.TemplateID), r); err != nil {
		return "", fmt.Errorf("render %s: %w", r.TemplateID, err)
	}

	var doc bytes.Buffer
	err := layouts.ExecuteTemplate(&doc, "document", map[string]any{
		"RegionID": RegionID,
		"Title":    r.Name,
		"Body":     template.HTML(body.String()),
	})
	if err != nil {
		return "", fmt.Errorf("render document shell: %w", err)
	}
	return doc.String(), nil
}
