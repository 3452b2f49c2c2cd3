package apidocs

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path"
	"slices"

	"github.com/labstack/echo/v4"
)

type Opts func(*config)

// configures the Doc middlewares
type config struct {
	// SpecURL the url to find the document at
	SpecURL string
	// When this return value is false, 403 will be responsed.
	Authorizer func(*http.Request) bool
	// Title shown in the browser tab
	Title string
}

func WithAuthorizer(authorizer func(*http.Request) bool) Opts {
	return func(cfg *config) {
		cfg.Authorizer = authorizer
	}
}

func WithTitle(title string) Opts {
	return func(cfg *config) {
		cfg.Title = title
	}
}

func prepare(basePath string, cfg *config) (string, string) {
	docPath := path.Join(basePath, "apidocs")

	// html
	tmpl := template.Must(template.New("apidoc").Parse(pageTemplate))
	buf := bytes.NewBuffer(nil)
	_ = tmpl.Execute(buf, cfg)

	return docPath, buf.String()
}

// Doc creates a middleware to serve a documentation site for an OpenAPI document.
// Mount it with e.Pre so it answers before routing.
func Doc(basePath string, apiJSON []byte, opts ...Opts) echo.MiddlewareFunc {
	cfg := &config{
		SpecURL: path.Join(basePath, "apispec.json"),
		Title:   "API documentation",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	docPath, uiHTML := prepare(basePath, cfg)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqPath := c.Request().URL.Path
			if slices.Contains([]string{docPath, cfg.SpecURL}, reqPath) {
				if cfg.Authorizer != nil && !cfg.Authorizer(c.Request()) {
					return c.String(http.StatusForbidden, "Forbidden")
				}

				switch reqPath {
				case docPath:
					return c.HTML(http.StatusOK, uiHTML)
				case cfg.SpecURL:
					return c.JSONBlob(http.StatusOK, apiJSON)
				}
			}

			if next == nil {
				return c.String(http.StatusNotFound, fmt.Sprintf("%q not found", reqPath))
			}

			return next(c)
		}
	}
}

const pageTemplate = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <title>{{ .Title }}</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>

  <body>
    <script id="api-reference" data-url="{{ .SpecURL }}"></script>

    <script src="https://cdnjs.cloudflare.com/ajax/libs/scalar-api-reference/1.25.99/standalone.min.js" integrity="sha512-ai3lOYZ5efNXMYwnqhz0mnCaImbqfwLE1VCx9Y9nhB3OJX4/uegjIAoQtJHy3SILHp/gS1OlPCIeNFPZT5i2WQ==" crossorigin="anonymous" referrerpolicy="no-referrer"></script>
  </body>
</html>`
