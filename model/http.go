package model

type NameRequestBody struct {
	Notes []string `json:"notes"`
	Root  string   `json:"root,omitempty"` // defaults to the first note
	All   bool     `json:"all,omitempty"`
}

// Notes are plain ints so they encode as a JSON array, not base64.
type ChordResponse struct {
	Symbol      string   `json:"symbol"`
	Root        string   `json:"root"`
	Bass        string   `json:"bass,omitempty"`
	IsInversion bool     `json:"is_inversion"`
	Intervals   []string `json:"intervals"`
	Notes       []int    `json:"notes"`
}

type NameResponse struct {
	RequestID string          `json:"request_id"`
	Chords    []ChordResponse `json:"chords"`
}

type SearchResult struct {
	File   string  `json:"file"`
	FileId uint32  `json:"file_id"`
	Offset float32 `json:"offset"`
	Notes  []int   `json:"notes"`
}

type SearchResponse struct {
	RequestID  string         `json:"request_id"`
	Symbol     string         `json:"symbol"`
	NumMatches int            `json:"num_matches"`
	Results    []SearchResult `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
