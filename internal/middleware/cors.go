package middleware

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSConfig lists the origins allowed to call the API
type CORSConfig struct {
	AllowedOrigins       []string
	PreviewOriginPattern string
}

// CORS returns a middleware that only admits allow-listed origins and preview
// deployments matching the configured pattern. Requests without an Origin
// header are not cross-origin and pass through; other origins get 403.
func CORS(cfg CORSConfig) (gin.HandlerFunc, error) {
	allowOrigin, err := originMatcher(cfg)
	if err != nil {
		return nil, err
	}

	return cors.New(cors.Config{
		AllowOriginFunc:  allowOrigin,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}), nil
}

func originMatcher(cfg CORSConfig) (func(origin string) bool, error) {
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		if origin = normalizeOrigin(origin); origin != "" {
			allowed[origin] = struct{}{}
		}
	}

	var preview *regexp.Regexp
	if cfg.PreviewOriginPattern != "" {
		re, err := regexp.Compile(cfg.PreviewOriginPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid preview origin pattern: %w", err)
		}
		preview = re
	}

	return func(origin string) bool {
		origin = normalizeOrigin(origin)
		if _, ok := allowed[origin]; ok {
			return true
		}
		return preview != nil && preview.MatchString(origin)
	}, nil
}

func normalizeOrigin(origin string) string {
	return strings.TrimRight(strings.TrimSpace(origin), "/")
}
