package assets

import (
	"crypto/sha256"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Web facing prefix on assets in static folder
const AssetPrefix string = "/assets/"

// Static serves and fingerprints the files of one static directory.
type Static struct {
	fsys   fs.FS
	hashes sync.Map // web path -> hashed web path
}

func New(fsys fs.FS) *Static {
	return &Static{fsys: fsys}
}

func (s *Static) HttpHandler(r chi.Router) {
	staticHandler := http.FileServer(http.FS(s.fsys))

	r.Group(func(r chi.Router) {
		r.Use(permCache) // Perma cache all static assets, should use cache busting version
		r.Use(versionedAssets)
		r.Get(AssetPrefix+"*", http.StripPrefix(AssetPrefix, staticHandler).ServeHTTP)
	})
}

func permCache(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "max-age=31536000")
		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// versionedAssets is Middleware that strips the version from an asset.
// Example: site.80b2c87c0b9a5af9.css forwards as site.css
func versionedAssets(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dir, file := path.Split(r.URL.Path)
		parts := strings.Split(file, ".")
		if len(parts) != 3 {
			next.ServeHTTP(w, r)
			return
		}

		r.URL.Path = dir + parts[0] + "." + parts[2]
		next.ServeHTTP(w, r)
	})
}

// Path takes the web facing path of an asset and returns the fingerprinted
// path. Missing files get an "x" version so the page still renders.
func (s *Static) Path(webPath string) string {
	if v, ok := s.hashes.Load(webPath); ok {
		return v.(string)
	}

	trimmedPath := strings.TrimPrefix(webPath, AssetPrefix)
	ext := path.Ext(trimmedPath)
	if ext == "" {
		return webPath
	}
	base := strings.TrimSuffix(trimmedPath, ext)

	data, err := fs.ReadFile(s.fsys, trimmedPath)
	if err != nil {
		return fmt.Sprintf(AssetPrefix+"%v.x%v", base, ext)
	}

	hashed := fmt.Sprintf(AssetPrefix+"%v.%x%v", base, sha256.Sum256(data), ext)
	s.hashes.Store(webPath, hashed)
	return hashed
}
