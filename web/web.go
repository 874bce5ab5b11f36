// Package web embeds the single-page client served at "/".
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var files embed.FS

// Index returns the page that hosts the client.
func Index() []byte {
	b, err := files.ReadFile("static/index.html")
	if err != nil {
		panic("web: index.html missing from embedded files: " + err.Error())
	}
	return b
}

// Assets holds the script and stylesheet, rooted so they serve under /static/.
func Assets() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic("web: " + err.Error())
	}
	return sub
}
