// Package evaluation scores the expense engine against a labelled corpus of
// messages and exports the results.
package evaluation

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

//go:embed corpus.csv
var corpusCSV []byte

// Case is one labelled message. Region may be empty; Total is a plain
// decimal ("120", "0").
type Case struct {
	Text     string `csv:"text"`
	Region   string `csv:"region"`
	Scenario string `csv:"scenario"`
	Method   string `csv:"method"`
	Total    string `csv:"total"`
}

// ExpectedTotal parses Total.
func (c Case) ExpectedTotal() (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(c.Total))
}

// LoadCorpus returns the built-in corpus.
func LoadCorpus() ([]Case, error) {
	return ReadCorpus(bytes.NewReader(corpusCSV))
}

// ReadCorpus reads a corpus CSV with a text,region,scenario,method,total header.
func ReadCorpus(r io.Reader) ([]Case, error) {
	var cases []Case
	if err := gocsv.Unmarshal(r, &cases); err != nil {
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}

	for i, c := range cases {
		if strings.TrimSpace(c.Text) == "" {
			return nil, fmt.Errorf("corpus row %d: empty text", i+2)
		}
		if _, err := c.ExpectedTotal(); err != nil {
			return nil, fmt.Errorf("corpus row %d: invalid total %q: %w", i+2, c.Total, err)
		}
	}
	return cases, nil
}
