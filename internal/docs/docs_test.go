package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/swaggo/swag"
)

func TestDoc_RefsResolve(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc error: %v", err)
	}

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("doc is not valid json: %v", err)
	}

	for _, name := range []string{"welfare.summaryResponse", "welfare.appendLogRequest", "welfare.logResponse", "distress.reportResponse"} {
		if _, ok := doc.Definitions[name]; !ok {
			t.Fatalf("missing definition %s", name)
		}
	}
	if _, ok := doc.Paths["/adoptions/{adoptionID}/welfare-logs"]["post"]; !ok {
		t.Fatalf("missing append route")
	}

	for _, part := range strings.Split(raw, `"$ref": "#/definitions/`)[1:] {
		name := part[:strings.Index(part, `"`)]
		if _, ok := doc.Definitions[name]; !ok {
			t.Fatalf("dangling $ref %s", name)
		}
	}
}
