package main

import (
	"bytes"
	"context"
	"errors"
	"log"
	"mime"
	"net"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.abhg.dev/snippet/internal/html"
)

// _previewStaticPath is where the preview server
// serves static assets from.
const _previewStaticPath = "/" + html.StaticDir

// previewServer serves a live preview of a page of snippets.
type previewServer struct {
	Log      *log.Logger
	Renderer *html.Renderer
	Page     *html.Page
}

// Handler builds the HTTP handler for the preview.
//
//	GET /              the page
//	GET /_/...         static assets
//	GET /raw/{index}   code of the snippet at index, as-is
func (s *previewServer) Handler() http.Handler {
	renderer := *s.Renderer
	renderer.Embedded = false
	renderer.StaticPath = _previewStaticPath

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		var buff bytes.Buffer
		if err := renderer.RenderPage(&buff, s.Page); err != nil {
			s.Log.Printf("render page: %v", err)
			http.Error(w, "unable to render page", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buff.Bytes())
	})
	r.Get(_previewStaticPath+"/*", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "*")
		bs, err := renderer.ReadStatic(name)
		if err != nil {
			http.NotFound(w, req)
			return
		}
		if ctype := mime.TypeByExtension(path.Ext(name)); len(ctype) > 0 {
			w.Header().Set("Content-Type", ctype)
		}
		_, _ = w.Write(bs)
	})
	r.Get("/raw/{index}", func(w http.ResponseWriter, req *http.Request) {
		idx, err := strconv.Atoi(chi.URLParam(req, "index"))
		if err != nil || idx < 0 || idx >= len(s.Page.Snippets) {
			http.NotFound(w, req)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(s.Page.Snippets[idx].Code))
	})
	return r
}

func (s *previewServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, req)
		s.Log.Printf("%v %v %d (%v)", req.Method, req.URL.Path, ww.Status(), time.Since(start))
	})
}

// ListenAndServe serves the preview on addr until ctx is done.
func (s *previewServer) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves the preview on ln until ctx is done.
func (s *previewServer) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.Log.Printf("Serving preview at http://%v", ln.Addr())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
