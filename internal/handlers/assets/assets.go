package assets

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AssetHandler serves product media files and the mini app itself.
type AssetHandler struct {
	mediaDir string
	static   http.Handler
}

func New(mediaDir, staticDir string) *AssetHandler {
	return &AssetHandler{
		mediaDir: mediaDir,
		static:   http.FileServer(http.Dir(staticDir)),
	}
}

// ServeMedia godoc
//
//	@Summary		Get a product media file
//	@Description	Any failure is an empty 404.
//	@Tags			Медиа
//	@Produce		octet-stream
//	@Param			productID	path	int		true	"Product id"
//	@Param			filename	path	string	true	"File name"
//	@Success		200
//	@Failure		404
//	@Router			/media/{productID}/{filename} [get]
func (h *AssetHandler) ServeMedia(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	filename := chi.URLParam(r, "filename")
	if err != nil || productID < 0 || !isPlainName(filename) {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	path := filepath.Join(h.mediaDir, strconv.Itoa(productID), filename)
	f, err := os.Open(path)
	if err != nil {
		zap.L().Debug("media file unavailable", zap.String("path", path), zap.Error(err))
		w.WriteHeader(http.StatusNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// ServeStatic serves index.html on / and any other file of the static directory.
func (h *AssetHandler) ServeStatic(w http.ResponseWriter, r *http.Request) {
	h.static.ServeHTTP(w, r)
}

// isPlainName reports whether name stays inside its directory when joined.
func isPlainName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}
	return filepath.Base(name) == name
}
