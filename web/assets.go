/*
Package web bundles the index page template and the browser assets.
*/
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
)

//go:embed templates static
var assets embed.FS

// IndexTemplate is the template name rendered for GET /.
const IndexTemplate = "index.html"

// Templates parses the page templates from dir, or from the embedded copy when dir is empty.
func Templates(dir string) (*template.Template, error) {
	if dir == "" {
		return template.ParseFS(assets, "templates/*.html")
	}
	tmpl, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates in %s: %w", dir, err)
	}
	return tmpl, nil
}

// Static returns the asset file system rooted at dir, or the embedded copy when dir is empty.
func Static(dir string) (http.FileSystem, error) {
	if dir == "" {
		sub, err := fs.Sub(assets, "static")
		if err != nil {
			return nil, err
		}
		return http.FS(sub), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static dir %s is not a directory", dir)
	}
	return http.Dir(dir), nil
}
