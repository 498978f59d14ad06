package webui

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed static/*
var webuiFS embed.FS

func SetupWebUI(r chi.Router) error {
	staticFS, err := fs.Sub(webuiFS, "static")
	if err != nil {
		return err
	}

	fileServer := http.FileServer(http.FS(staticFS))
	r.Handle("/*", fileServer)
	return nil
}
