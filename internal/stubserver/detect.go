package stubserver

import (
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/veriscan/veriscan-go/internal/client/models"
)

// classifySample produces a deterministic pseudo-verdict from the sample
// bytes, standing in for the real detection models. The same input always
// yields the same verdict, which keeps tests stable.
func classifySample(kind models.ContentKind, sample []byte) (bool, float64) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(kind))
	_, _ = h.Write(sample)
	sum := h.Sum64()

	aiGenerated := sum%2 == 0
	// confidence in [0.5, 1.0): a verdict below coin-flip would be useless
	confidence := 0.5 + float64(sum%500)/1000.0
	return aiGenerated, confidence
}

// newRecord classifies the sample and builds the stored record. content is
// kept for text samples only; media bytes are never retained.
func newRecord(kind models.ContentKind, sample []byte, content string) models.VerificationRecord {
	result, confidence := classifySample(kind, sample)
	if len(content) > 1000 {
		content = content[:1000]
	}
	return models.VerificationRecord{
		ID:         uuid.NewString(),
		Type:       kind,
		Result:     result,
		Confidence: confidence,
		Content:    content,
		Timestamp:  time.Now().UTC(),
	}
}
