package httpapi

import (
	_ "embed"
	"net/http"
	"strings"
)

//go:embed openapi.yaml
var openAPIDocument []byte

const (
	openAPIPath   = "/openapi.yaml"
	swaggerUIPage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<title>Buzzerbeater Analyzer API</title>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
window.ui = SwaggerUIBundle({ url: '{{SPEC_URL}}', dom_id: '#swagger-ui', deepLinking: true });
</script>
</body>
</html>`
)

var swaggerUIRendered = strings.Replace(swaggerUIPage, "{{SPEC_URL}}", openAPIPath, 1)

// OpenAPI serves the embedded API document.
func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.OpenAPI")
	defer span.End()

	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	_, _ = w.Write(openAPIDocument)
}

func (h *Handler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.SwaggerUI")
	defer span.End()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerUIRendered))
}
