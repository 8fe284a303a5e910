package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Texto libre de usuarios (notas, respuestas, reportes): sin HTML.
var strict = bluemonday.StrictPolicy()

// Text quita todo el markup y devuelve texto plano recortado.
// bluemonday escapa entidades; las deshacemos porque se guarda texto, no HTML.
func Text(s string) string {
	s = strict.Sanitize(s)
	return strings.TrimSpace(html.UnescapeString(s))
}
