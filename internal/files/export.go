package files

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/hexaaagon/tugascollecter/models"
)

// Export serializes payload into a timestamped JSON file under the exports
// directory and returns its path.
func (s *AttachmentStore) Export(ctx context.Context, payload models.ExportPayload) (string, error) {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", NewError(CodeExport, "failed to encode export payload", err)
	}

	name := fmt.Sprintf("tugas-export-%s-%s.json",
		s.now().Format("2006-01-02T15-04-05"),
		uuid.NewString()[:8])
	path := filepath.Join(s.exportsPath(), name)

	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return "", NewError(CodeExport, "failed to write export file", err)
	}

	s.logger.Info().Str("path", path).Msg("data exported")
	return path, nil
}

// Import invokes the document picker and parses the picked file as an
// export document. Returns (nil, nil) when the user cancels. A payload
// missing the required version or exportedAt fields is rejected; extra
// fields are accepted.
func (s *AttachmentStore) Import(ctx context.Context) (*models.ExportPayload, error) {
	picked, err := s.picker.Pick(ctx)
	if err != nil {
		return nil, NewError(CodeImport, "document picker failed", err)
	}
	if picked == nil {
		// User cancellation is a successful nil result, not an error.
		return nil, nil
	}

	raw, err := os.ReadFile(picked.URI)
	if err != nil {
		return nil, NewError(CodeImport, "failed to read picked file", err)
	}

	return ParseExport(raw)
}

// ParseExport validates and decodes an export document. The validator
// requires at minimum the version and exportedAt top-level fields.
func ParseExport(raw []byte) (*models.ExportPayload, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, NewError(CodeImport, "malformed export document", err)
	}

	for _, field := range []string{"version", "exportedAt"} {
		if _, ok := probe[field]; !ok {
			return nil, NewError(CodeImport, fmt.Sprintf("export document missing required field %q", field), nil)
		}
	}

	var payload models.ExportPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, NewError(CodeImport, "malformed export document", err)
	}

	return &payload, nil
}
