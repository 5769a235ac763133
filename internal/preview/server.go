// Package preview serves the rendered documentation over HTTP so the
// output can be inspected while iterating on route handlers.
package preview

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/routelabel/routelabel/internal/formatter"
)

// RouteView is the JSON shape of one extracted route.
type RouteView struct {
	Module    string            `json:"module"`
	Title     string            `json:"title"`
	Path      string            `json:"path"`
	Methods   []string          `json:"methods"`
	PathTypes map[string]string `json:"path_types,omitempty"`
	Handler   string            `json:"handler"`
	Source    string            `json:"source"`
	Line      int               `json:"line"`
	Docstring string            `json:"docstring,omitempty"`
}

// Server exposes the rendered document and a JSON route listing.
type Server struct {
	echo     *echo.Echo
	document string
	routes   []RouteView
}

// New builds a preview server for a rendered document.
func New(document string, modules []formatter.ModuleDoc) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:     e,
		document: document,
		routes:   routeViews(modules),
	}

	e.GET("/", s.handleDocument)
	e.GET("/routes.json", s.handleRoutes)
	return s
}

// Start blocks serving on the given address.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) handleDocument(c echo.Context) error {
	return c.String(http.StatusOK, s.document)
}

func (s *Server) handleRoutes(c echo.Context) error {
	return c.JSON(http.StatusOK, s.routes)
}

func routeViews(modules []formatter.ModuleDoc) []RouteView {
	views := make([]RouteView, 0)
	for _, mod := range modules {
		for _, route := range mod.Routes {
			views = append(views, RouteView{
				Module:    mod.Name,
				Title:     route.Title(),
				Path:      route.Path(),
				Methods:   route.Methods,
				PathTypes: route.PathTypes(),
				Handler:   route.HandlerName,
				Source:    route.SourceFile,
				Line:      route.Line,
				Docstring: route.Docstring(),
			})
		}
	}
	return views
}
