package views

import (
	"errors"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

var indexTmpl *template.Template

// loadTemplatesFromFS parses the page templates found in dir of fsys.
// Tests use it to simulate a broken template set.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	indexTmpl, err = template.ParseFS(sub, "*.html")
	return err
}

// LoadTemplates parses the embedded templates. Call it during startup, before
// serving requests; if it fails the server must not start.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// IndexData is the view model for the landing page.
type IndexData struct {
	Dates   []string
	Periods []string
	Version string
}

func RenderIndex(w io.Writer, data IndexData) error {
	if indexTmpl == nil {
		return errors.New("index template not loaded: call views.LoadTemplates during startup")
	}
	return indexTmpl.ExecuteTemplate(w, "index.html", data)
}

// StaticFS returns the embedded static assets (JavaScript and CSS) rooted at
// the static directory.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(viewsFS, "static")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return http.FS(sub)
}
