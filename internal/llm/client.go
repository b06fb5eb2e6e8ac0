package llm

import (
	"context"
)

// Attachment is a binary document handed to the capability together
// with its declared media type. The engine never parses the bytes
// itself; document understanding is the capability's job.
type Attachment struct {
	MIME string
	Data []byte
}

// Part is one element of a multimodal request: either free text or an
// attached document.
type Part struct {
	Text       string
	Attachment *Attachment
}

// TextPart builds a text-only request part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// AttachmentPart builds a binary request part.
func AttachmentPart(a *Attachment) Part {
	return Part{Attachment: a}
}

// GenerateRequest holds the parameters for a capability invocation.
type GenerateRequest struct {
	Task         TaskType
	Instructions string // fixed instruction prompt, sent ahead of the parts
	Parts        []Part
}

// GenerateResponse holds the raw result of a capability invocation.
// Text is untrusted free-form output; callers run it through the
// structured-extraction guard before use.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to the external multimodal reasoning
// capability. It is injected as a collaborator so orchestrators stay
// testable with a stub returning canned text.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}
