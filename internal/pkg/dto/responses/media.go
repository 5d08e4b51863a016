package responses

type MediaObject struct {
	ObjectName   string `json:"object_name"`
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type,omitempty"`
	LastModified string `json:"last_modified"`
	URL          string `json:"url,omitempty"`
}

type UploadMedia struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url,omitempty"`
}
