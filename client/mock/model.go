package mock

import "time"

// Link is a stored link record, serialized the way the backend does.
type Link struct {
	ID             string    `json:"id"`
	URL            string    `json:"url"`
	ShortURL       string    `json:"short_url"`
	CreateTime     time.Time `json:"create_time"`
	LastAccessTime time.Time `json:"last_access_time"`
	AccessCount    int64     `json:"access_count"`
}

// Request is a recorded incoming request.
type Request struct {
	Method        string
	URI           string
	Authorization string
	ContentType   string
	Body          string
}

type detail struct {
	Detail interface{} `json:"detail"`
}
