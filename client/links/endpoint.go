package links

import (
	"net/url"
	"strings"
)

const (
	linksPath    = "/links"
	redirectPath = "/s"
)

var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way JavaScript's encodeURIComponent does.
func EncodeURIComponent(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}

// createQuery builds "url=<enc>[&custom_id=<enc>]".
func createQuery(URL, customID string) string {
	ret := "url=" + EncodeURIComponent(URL)
	if customID != "" {
		ret += "&custom_id=" + EncodeURIComponent(customID)
	}
	return ret
}

func linkPath(id string, elements ...string) string {
	ret := linksPath + "/" + url.PathEscape(id)
	for _, element := range elements {
		ret += "/" + element
	}
	return ret
}
