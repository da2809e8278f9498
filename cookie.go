package hpack

import "strings"

// ReassembleCookies coalesces the multiple "cookie" header fields HTTP/2
// requires to be split across the wire back into the single Cookie header
// HTTP/1 semantics expect, joined by "; " with no trailing delimiter.
// Non-cookie fields pass through unchanged in their original order, with
// the merged cookie field appended at the tail of the list.
func ReassembleCookies(headers []HeaderField) []HeaderField {
	var crumbs []string
	sawCookie := false
	out := make([]HeaderField, 0, len(headers))
	for _, h := range headers {
		if strings.EqualFold(h.Name, "cookie") {
			sawCookie = true
			if h.Value != "" {
				crumbs = append(crumbs, h.Value)
			}
			continue
		}
		out = append(out, h)
	}
	if !sawCookie {
		return out
	}
	return append(out, HeaderField{Name: "cookie", Value: strings.Join(crumbs, "; ")})
}
