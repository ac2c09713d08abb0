// Package harvard fetches object records from the Harvard Art Museums API
// and transforms them into the canonical Artwork shape. Any failure (a
// missing API key, a network error, a non-2xx response or an unreadable
// body) degrades to a fixed built-in fallback collection instead of
// surfacing an error.
package harvard

// objectResponse is the envelope returned by GET /object.
type objectResponse struct {
	Records []Record `json:"records"`
}

// Record is one museum object as returned by the API. Every field except the
// numeric id is optional; absence is represented by the zero value.
type Record struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	People          []Person `json:"people"`
	Classification  string   `json:"classification"`
	Dated           string   `json:"dated"`
	Description     string   `json:"description"`
	PrimaryImageURL string   `json:"primaryimageurl"`
	Culture         string   `json:"culture"`
	Medium          string   `json:"medium"`
}

// Person is an artist associated with a record.
type Person struct {
	Name string `json:"name"`
}
