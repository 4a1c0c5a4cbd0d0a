package sparql

import "strconv"

// Term is a single RDF term from a result binding: a URI, literal, or blank
// node, as reported by the endpoint.
type Term struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Float parses the term value as a float64, returning 0 on malformed input.
// SPARQL JSON results carry numeric literals as strings.
func (t Term) Float() float64 {
	v, err := strconv.ParseFloat(t.Value, 64)
	if err != nil {
		return 0
	}

	return v
}

// Int parses the term value as an int, returning 0 on malformed input.
func (t Term) Int() int {
	v, err := strconv.Atoi(t.Value)
	if err != nil {
		return 0
	}

	return v
}

// Binding maps variable names to terms for one result row.
type Binding map[string]Term

// selectResponse mirrors the application/sparql-results+json layout for
// SELECT queries.
type selectResponse struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []Binding `json:"bindings"`
	} `json:"results"`
}

// askResponse mirrors the result layout for ASK queries.
type askResponse struct {
	Boolean bool `json:"boolean"`
}
