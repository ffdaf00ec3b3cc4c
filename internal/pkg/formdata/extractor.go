package formdata

import (
	"go.uber.org/zap"
)

// Extractor decodes raw form submissions into typed clinical records. It is
// stateless apart from the logger; methods are safe for concurrent use.
type Extractor struct {
	Log *zap.Logger
}

func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{Log: logger}
}
