package nlp

type NormalizationResult struct {
	NormalizedInput string            `json:"normalized_input"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

type INormalizer interface {
	Normalize(text string) NormalizationResult
}
