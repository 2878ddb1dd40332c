package models

// StoredObject is the reference kept for an uploaded file: the object
// key inside its bucket plus the public URL derived from it. Cleanup
// always works from the key, never by parsing the URL.
type StoredObject struct {
	Key string
	URL string
}
