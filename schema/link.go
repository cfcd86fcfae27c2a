package schema

import (
	"encoding/json"
	"time"

	"github.com/tidwall/gjson"
)

type (
	// Link is a link record exactly as returned by the backend. The record is
	// not validated; accessors read fields by name and return zero values
	// when a field is absent.
	Link struct {
		json.RawMessage
	}

	// Analytics is the raw analytics payload of a single link.
	Analytics struct {
		json.RawMessage
	}
)

func get(raw json.RawMessage, path string) gjson.Result {
	return gjson.GetBytes(raw, path)
}

func getTime(raw json.RawMessage, path string) time.Time {
	value := get(raw, path).String()
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// Get returns an arbitrary field by gjson path.
func (l Link) Get(path string) gjson.Result { return get(l.RawMessage, path) }

func (l Link) ID() string { return get(l.RawMessage, "id").String() }

func (l Link) URL() string { return get(l.RawMessage, "url").String() }

func (l Link) ShortURL() string { return get(l.RawMessage, "short_url").String() }

func (l Link) AccessCount() int64 { return get(l.RawMessage, "access_count").Int() }

func (l Link) CreateTime() time.Time { return getTime(l.RawMessage, "create_time") }

func (l Link) LastAccessTime() time.Time { return getTime(l.RawMessage, "last_access_time") }

// Get returns an arbitrary field by gjson path.
func (a Analytics) Get(path string) gjson.Result { return get(a.RawMessage, path) }

func (a Analytics) ID() string { return get(a.RawMessage, "id").String() }

func (a Analytics) URL() string { return get(a.RawMessage, "url").String() }

func (a Analytics) ShortURL() string { return get(a.RawMessage, "short_url").String() }

func (a Analytics) AccessCount() int64 { return get(a.RawMessage, "access_count").Int() }

func (a Analytics) CreateTime() time.Time { return getTime(a.RawMessage, "create_time") }

func (a Analytics) LastAccessTime() time.Time { return getTime(a.RawMessage, "last_access_time") }
