// Package vision calls an OpenAI-style vision-language endpoint to read the
// raw text off a receipt photo. The reply is treated as untrusted: the chat
// envelope is schema-validated and the content is handed to the receipt
// normalizer exactly as the model produced it, wrapper artifacts and all.
package vision

import "context"

// ExtractRequest describes one receipt image to read.
type ExtractRequest struct {
	// ImagePath points at a local receipt image; the client inlines it as a
	// data URL. Mutually exclusive with ImageDataURL.
	ImagePath string
	// ImageDataURL is a ready-made data: URL, for callers that already hold
	// the bytes.
	ImageDataURL string
}

// ExtractResult is the raw model output plus a cheap plausibility score.
type ExtractResult struct {
	// Text is the model reply verbatim. Downstream parsing owns all cleanup.
	Text string
	// Confidence is a heuristic 0..1 guess at whether Text looks like a
	// receipt at all (dates, currency, amounts present).
	Confidence float32
}

// TextExtractor is the interface the scan pipeline depends on.
type TextExtractor interface {
	ExtractText(ctx context.Context, req ExtractRequest) (ExtractResult, error)
}
