package entity

// StructuredDocument is a best-effort structured summary of one input
// file, produced independently of bill-item extraction.
type StructuredDocument struct {
	Title    string            `json:"title"`
	Sections []DocumentSection `json:"sections"`
	Tables   []DocumentTable   `json:"tables"`
	Metadata DocumentMetadata  `json:"metadata"`
}

// DocumentSection groups content lines under the nearest preceding header.
type DocumentSection struct {
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Identifiers []string  `json:"identifiers"`
	Dates       []string  `json:"dates"`
	Amounts     []float64 `json:"amounts"`
	Parties     []string  `json:"parties"`
}

// DocumentTable is a heuristically detected tabular block.
type DocumentTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// DocumentMetadata carries provenance and quality signals.
type DocumentMetadata struct {
	FileName     string `json:"fileName"`
	TextQuality  int    `json:"text_quality"`
	QualityLabel string `json:"qualityLabel"`
	LineCount    int    `json:"lineCount"`
	CharCount    int    `json:"charCount"`
}
