// Package static embeds the web assets served by daysleft
package static

import (
	"embed"
	"html/template"
	"io/fs"
)

const (
	filesDir = "files"
)

//go:embed files/*
var embeddedFiles embed.FS

// Files returns the assets rooted at the files directory.
func Files() fs.FS {
	sub, err := fs.Sub(embeddedFiles, filesDir)
	if err != nil {
		// filesDir is embedded above, so Sub cannot fail.
		panic(err)
	}

	return sub
}

// Template parses the page template.
func Template() (*template.Template, error) {
	return template.New("index.html").ParseFS(Files(), "index.html")
}
