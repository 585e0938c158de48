package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/mww/fantasy_report/controller"
	"github.com/mww/fantasy_report/model"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
	logger *zap.SugaredLogger
}

func NewServer(port int, allowedOrigins []string, ctrl controller.C, logger *zap.SugaredLogger) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render, allowedOrigins, logger)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
		logger: logger,
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.Errorw("error shutting down server", "error", err)
		}
	}()

	s.logger.Infow("web server is listening", "addr", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.logger.Fatalw("fatal error with server", "error", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		IndentJSON: true,
		Funcs: []template.FuncMap{
			{
				"date": dateFormatter,
				"eff":  model.FormatEfficiency,
				"num":  model.Round2,
			},
		},
	})
}

func dateFormatter(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	return t.Format("2006-01-02 15:04 MST")
}
