package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func WriteYAML(w io.Writer, view ViewExport) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(view); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return encoder.Close()
}
