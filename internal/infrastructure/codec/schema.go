package codec

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"

	"github.com/bnema/splitpane/internal/domain/entity"
)

// Schema returns the JSON schema of the layout document, indented.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&entity.LayoutDocument{})

	schema.ID = "https://github.com/bnema/splitpane/layout.schema.json"
	schema.Title = "Splitpane Layout"
	schema.Description = "Binary pane tree saved by splitpane, version " + entity.LayoutVersion

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
