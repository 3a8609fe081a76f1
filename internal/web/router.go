// Package web serves the WebAssembly build of the game to browsers.
package web

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/iburimskiy/ripple-rush/internal/config"
)

const (
	// WasmFile is the name of the compiled game under the web root.
	WasmFile = "game.wasm"
	// LoaderFile is the Go runtime glue shipped with the toolchain.
	LoaderFile = "wasm_exec.js"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type server struct {
	cfg     config.Config
	log     *log.Logger
	started time.Time
	page    []byte
}

// NewRouter builds the HTTP handler for the game page, the static assets
// under cfg.WebRoot and a health endpoint.
func NewRouter(cfg config.Config, logger *log.Logger) (*gin.Engine, error) {
	if logger == nil {
		logger = log.Default()
	}
	var page bytes.Buffer
	if err := indexTemplate.Execute(&page, struct{ Title, Wasm, Loader string }{cfg.Title, WasmFile, LoaderFile}); err != nil {
		return nil, err
	}
	s := &server{cfg: cfg, log: logger, started: time.Now(), page: page.Bytes()}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggerMiddleware(logger))
	router.Use(securityHeadersMiddleware())
	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedExtensions([]string{".png", ".jpg", ".jpeg", ".gif", ".ico"})))
	router.Use(cacheHeadersMiddleware(cfg.Production, cfg.StaticCacheAge))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logger.Warn("failed to set trusted proxies", "err", err)
	}

	if missing := MissingAssets(cfg.WebRoot); len(missing) > 0 {
		logger.Warn("web assets not built, run: go generate ./cmd/ripplerush-web", "root", cfg.WebRoot, "missing", missing)
	}

	limiter := newLimiterStore(cfg.RateLimitRPS, cfg.RateLimitBurst, time.Hour)
	static := router.Group("/static", rateLimitMiddleware(limiter))
	static.Static("/", cfg.WebRoot)

	router.GET("/", s.homeHandler)
	router.GET("/healthz", s.healthzHandler)
	return router, nil
}

// MissingAssets lists the build outputs the page needs that are absent from root.
func MissingAssets(root string) []string {
	return lo.Filter([]string{WasmFile, LoaderFile}, func(name string, _ int) bool {
		info, err := os.Stat(filepath.Join(root, name))
		return err != nil || info.IsDir()
	})
}

func (s *server) homeHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.page)
}

func (s *server) healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}
