package message

// HeaderMap carries the header entries of one message as header-name to
// header-value pairs. Keys are unique: setting an existing key overwrites
// its previous value. Keys and values are taken verbatim — no case folding,
// trimming or validation of any kind.
type HeaderMap map[string]string

// Set inserts or overwrites one header entry.
func (h HeaderMap) Set(key, value string) {
	h[key] = value
}

// clone returns an independent copy so message snapshots do not alias the
// builder's live map.
func (h HeaderMap) clone() HeaderMap {
	c := make(HeaderMap, len(h))
	for k, v := range h {
		c[k] = v
	}
	return c
}
