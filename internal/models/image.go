package models

// ImageAsset is a locally picked image attached to an event. The file stays
// on the device until the multipart create/update call streams it out.
type ImageAsset struct {
	Path string // local file path from the picker
	Name string // filename for the multipart part; basename of Path when empty
	MIME string // content type; inferred from the extension when empty
}
