// Package api exposes the matching engine and the catalog over HTTP. Every
// search is a pure function of the posted profile and the catalog snapshot;
// the server holds no per-request state.
package api

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tsmith/scholarship-finder/internal/catalog"
	"github.com/tsmith/scholarship-finder/internal/export"
	"github.com/tsmith/scholarship-finder/internal/match"
	"github.com/tsmith/scholarship-finder/internal/profile"
)

type Server struct {
	Store *catalog.Store
	Rules *catalog.RuleSet
	Echo  *echo.Echo
}

func NewServer(store *catalog.Store, rules *catalog.RuleSet) *Server {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// CORS: allow frontend origins from env or default to localhost
	allowedOrigins := []string{"http://localhost:3000"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	s := &Server{
		Store: store,
		Rules: rules,
		Echo:  e,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/", s.handleHome)
	s.Echo.GET("/health", s.handleHealth)
	api := s.Echo.Group("/api/v1")
	api.POST("/search", s.handleSearch)
	api.POST("/export/:format", s.handleExport)
	api.GET("/catalog/info", s.handleCatalogInfo)
	api.GET("/catalog/:id", s.handleGetRecord)
	api.POST("/catalog/reload", s.handleCatalogReload)
	api.POST("/catalog/rollover", s.handleCatalogRollover)
}

// searchRequest is a profile plus the requested result order. Fields bind
// straight onto the profile; omitted ones pick up the documented defaults.
type searchRequest struct {
	profile.Profile
	Sort string `json:"sort"`
}

func (s *Server) handleHome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "online",
		"service": "Scholarship Research API",
		"version": s.Store.Info().Version,
		"endpoints": map[string]string{
			"/api/v1/search":           "POST - Search scholarships",
			"/api/v1/export/:format":   "POST - Download results (csv|excel|pdf|html|calendar|tracker)",
			"/api/v1/catalog/info":     "GET - Catalog metadata",
			"/api/v1/catalog/:id":      "GET - One catalog record",
			"/api/v1/catalog/reload":   "POST - Reload the catalog from disk",
			"/api/v1/catalog/rollover": "POST - Advance stale deadlines",
		},
	})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) handleSearch(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.GPA < 0 || req.GPA > 5 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "GPA must be between 0.0 and 5.0"})
	}

	p := req.Profile.Normalized()
	candidates := catalog.Candidates(s.Rules, s.Store, p)
	result := match.Search(p, candidates, time.Now(), match.ParseSortOrder(req.Sort))

	return c.JSON(http.StatusOK, map[string]any{
		"profile":      p,
		"stats":        result.Stats,
		"scholarships": result.Records,
		"total":        len(result.Records),
	})
}

func (s *Server) handleExport(c echo.Context) error {
	format, err := export.ParseFormat(c.Param("format"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.GPA < 0 || req.GPA > 5 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "GPA must be between 0.0 and 5.0"})
	}

	now := time.Now()
	p := req.Profile.Normalized()
	candidates := catalog.Candidates(s.Rules, s.Store, p)
	result := match.Search(p, candidates, now, match.ParseSortOrder(req.Sort))

	var buf bytes.Buffer
	report := export.Report{
		Profile:     p,
		Records:     result.Records,
		Stats:       result.Stats,
		GeneratedAt: now,
	}
	if err := export.Write(&buf, format, report); err != nil {
		c.Logger().Errorf("Export failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Export failed"})
	}

	name := export.Filename(format, now)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, format.ContentType(), buf.Bytes())
}

func (s *Server) handleCatalogInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Store.Info())
}

func (s *Server) handleGetRecord(c echo.Context) error {
	o, ok := s.Store.GetByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Scholarship not found"})
	}
	return c.JSON(http.StatusOK, o)
}

func (s *Server) handleCatalogReload(c echo.Context) error {
	if err := s.Store.Reload(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s.Store.Info())
}

func (s *Server) handleCatalogRollover(c echo.Context) error {
	changes, err := s.Store.Rollover(time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if changes == nil {
		changes = []catalog.Change{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"changes": changes,
		"count":   len(changes),
	})
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}
