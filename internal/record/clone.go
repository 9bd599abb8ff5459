package record

// Clone deep-copies the JSON containers of rec (objects, []any and
// []string) so a transform on the copy never reaches the caller's value.
// Scalars are shared.
func Clone(rec map[string]any) map[string]any {
	if rec == nil {
		return nil
	}
	return cloneValue(rec).(map[string]any)
}

func cloneValue(v any) any {
	switch c := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(c))
		for k, el := range c {
			out[k] = cloneValue(el)
		}
		return out
	case []any:
		out := make([]any, len(c))
		for i, el := range c {
			out[i] = cloneValue(el)
		}
		return out
	case []string:
		out := make([]string, len(c))
		copy(out, c)
		return out
	}
	return v
}
