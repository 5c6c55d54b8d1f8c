package status

// Toast is the user-facing shape of a failed request: a short message plus
// the HTTP status it should be written with.
type Toast struct {
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (t Toast) Error() string {
	return t.Message
}
