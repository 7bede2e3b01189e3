// Package web embeds the static browser client: a single page with login,
// signup and password-reset panels talking to the JSON API.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var files embed.FS

// Assets returns the client files rooted at the directory holding
// index.html.
func Assets() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// "static" is embedded above, so Sub cannot fail.
		panic(err)
	}
	return sub
}
