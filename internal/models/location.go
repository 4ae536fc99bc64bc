package models

// WordPair is the chameleon secret: citizens get Distinct, the imposter gets Imposter
type WordPair struct {
	Distinct string `json:"distinct"`
	Imposter string `json:"imposter"`
}

// Category represents a themed word list. Classic categories carry Words,
// chameleon categories carry Pairs.
type Category struct {
	Name  string     `json:"category"`
	Words []string   `json:"words,omitempty"`
	Pairs []WordPair `json:"pairs,omitempty"`
}
