package nocobase

// Params carries query-string parameters for list/get style actions.
type Params map[string]any

// Values carries field values for create/update style actions.
type Values map[string]any

// Record is a single decoded record object.
type Record map[string]any

// Response is the decoded JSON object returned by the server, typically
// shaped {"data": ..., "meta": ...}. The body is returned verbatim with
// no normalization.
type Response map[string]any

// Data returns the raw data member of the response, or nil.
func (r Response) Data() any {
	return r["data"]
}

// Meta returns the meta member of the response, or nil.
func (r Response) Meta() map[string]any {
	m, _ := r["meta"].(map[string]any)
	return m
}

// Rows flattens the data member into a list of records. Server versions
// disagree on whether single-record actions return an object or a
// one-element list (update is the usual offender), so callers that
// iterate rows should go through here instead of asserting the shape
// themselves.
//
// A data list is returned as-is when every element is an object, a data
// object becomes a one-element list, and anything else yields nil.
func (r Response) Rows() []Record {
	switch data := r["data"].(type) {
	case []any:
		rows := make([]Record, 0, len(data))
		for _, item := range data {
			m, ok := item.(map[string]any)
			if !ok {
				return nil
			}
			rows = append(rows, Record(m))
		}
		return rows
	case map[string]any:
		return []Record{Record(data)}
	default:
		return nil
	}
}
