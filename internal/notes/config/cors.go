package config

import "strings"

// Origins для локальной разработки web-клиента разрешены всегда.
var defaultOrigins = []string{
	"http://localhost:5173",
	"https://localhost:5173",
}

// CORSConfig содержит настройки разрешенных cross-origin источников.
type CORSConfig struct {
	Origins   string `yaml:"origins" env:"CORS_ORIGINS" env-default:""`
	WebOrigin string `yaml:"web_origin" env:"WEB_ORIGIN" env-default:""`
}

// AllowedOrigins возвращает объединение источников из CORS_ORIGINS,
// WEB_ORIGIN и значений по умолчанию, без дубликатов.
func (c *CORSConfig) AllowedOrigins() []string {
	seen := make(map[string]struct{})
	origins := make([]string, 0, len(defaultOrigins)+2)

	add := func(origin string) {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			return
		}
		if _, ok := seen[origin]; ok {
			return
		}
		seen[origin] = struct{}{}
		origins = append(origins, origin)
	}

	for _, origin := range strings.Split(c.Origins, ",") {
		add(origin)
	}
	add(c.WebOrigin)
	for _, origin := range defaultOrigins {
		add(origin)
	}

	return origins
}
