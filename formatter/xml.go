package formatter

import (
	"strconv"
	"strings"

	"github.com/Helhest/mrt/routing"
)

// BuildXML serializes a route response to XML
func (rb *responseBuilder) BuildXML(res *RouteResponse) []byte {
	var b strings.Builder
	b.WriteString("<RouteResponse")
	if res.NetworkVersion != "" {
		b.WriteString(" networkVersion=\"")
		b.WriteString(xmlEscape(res.NetworkVersion))
		b.WriteString("\"")
	}
	b.WriteString(">")
	writeElement(&b, "From", res.From)
	writeElement(&b, "To", res.To)
	if res.Shortest != nil {
		writeResultXML(&b, "Shortest", res.Shortest)
	}
	if res.Fastest != nil {
		writeResultXML(&b, "Fastest", res.Fastest)
	}
	if len(res.Stops) > 0 {
		b.WriteString("<Stops>")
		for _, s := range res.Stops {
			b.WriteString("<Stop code=\"")
			b.WriteString(xmlEscape(s.Code))
			b.WriteString("\">")
			writeElement(&b, "Name", s.Name)
			writeElement(&b, "Latitude", strconv.FormatFloat(s.Latitude, 'f', -1, 64))
			writeElement(&b, "Longitude", strconv.FormatFloat(s.Longitude, 'f', -1, 64))
			b.WriteString("</Stop>")
		}
		b.WriteString("</Stops>")
	}
	b.WriteString("</RouteResponse>")
	return []byte(b.String())
}

func writeResultXML(b *strings.Builder, tag string, r *routing.Result) {
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(" status=\"")
	b.WriteString(r.Status.String())
	b.WriteString("\">")
	switch r.Status {
	case routing.StatusFound:
		writeElement(b, "Hops", strconv.Itoa(r.Hops))
		writeElement(b, "Minutes", strconv.FormatFloat(r.Minutes, 'f', 2, 64))
		b.WriteString("<Path>")
		for _, code := range r.Path {
			writeElement(b, "Code", code)
		}
		b.WriteString("</Path>")
	case routing.StatusUnknownStation:
		writeElement(b, "Unknown", r.Unknown)
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}

func writeElement(b *strings.Builder, tag, value string) {
	if value == "" {
		return
	}
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(">")
	b.WriteString(xmlEscape(value))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
