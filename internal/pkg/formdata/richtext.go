package formdata

import (
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type richTextPayload struct {
	Blocks []richTextBlock `json:"blocks"`
}

type richTextBlock struct {
	Text string `json:"text"`
}

// RichText decodes the form library's serialized block-structured note
// payload into plain text, joining block texts with newlines. An absent
// value, a parse failure or an empty block list all yield "" — note
// decoding must never abort a larger extraction.
func (e *Extractor) RichText(raw interface{}) string {
	serialized, ok := raw.(string)
	if !ok || serialized == "" {
		return ""
	}

	var payload richTextPayload
	if err := json.Unmarshal([]byte(serialized), &payload); err != nil {
		e.Log.Debug("rich text payload did not parse, treating as empty",
			zap.Error(err),
		)
		return ""
	}
	if len(payload.Blocks) == 0 {
		return ""
	}

	texts := make([]string, 0, len(payload.Blocks))
	for _, block := range payload.Blocks {
		texts = append(texts, block.Text)
	}
	return strings.Join(texts, "\n")
}
