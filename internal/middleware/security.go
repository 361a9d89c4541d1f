package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/unrolled/secure"
	"github.com/wb-go/wbf/ginext"
)

const contentSecurityPolicy = "default-src 'self' https:; " +
	"base-uri 'self'; " +
	"font-src 'self' https: data:; " +
	"img-src 'self' data: blob: https:; " +
	"object-src 'none'; " +
	"script-src 'self' https://unpkg.com; " +
	"style-src 'self' https: 'unsafe-inline'; " +
	"connect-src 'self' ws:; " +
	"upgrade-insecure-requests"

// Security sets the standard hardening headers on every response.
func Security(production bool) ginext.HandlerFunc {
	s := secure.New(secure.Options{
		IsDevelopment:           !production,
		FrameDeny:               true,
		ContentTypeNosniff:      true,
		BrowserXssFilter:        true,
		ContentSecurityPolicy:   contentSecurityPolicy,
		ReferrerPolicy:          "no-referrer",
		XDNSPrefetchControl:     "off",
		CrossOriginOpenerPolicy: "same-origin",
		STSSeconds:              15552000,
		STSIncludeSubdomains:    true,
		SSLProxyHeaders:         map[string]string{"X-Forwarded-Proto": "https"},
	})

	return func(c *ginext.Context) {
		if err := s.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		c.Next()
	}
}

// CORS allows the configured origins. An empty list or "*" allows any origin.
func CORS(origins []string) ginext.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	all := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			all = true
		}
	}
	if all {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}

	h := cors.New(cfg)
	return func(c *ginext.Context) { h(c) }
}
