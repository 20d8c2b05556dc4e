package model

// VersionPayload is the metadata endpoint body. Only clientVersionUpload is read.
type VersionPayload struct {
	ClientVersionUpload string `json:"clientVersionUpload"`
}

// RelayFailure is the proxy relay body sent with status 500.
type RelayFailure struct {
	Error    string         `json:"error"`
	Fallback VersionPayload `json:"fallback"`
}

type VersionResponseData struct {
	Version     string `json:"version"`
	Source      string `json:"source"`
	DownloadURL string `json:"download_url"`
}

type DownloadRequest struct {
	Version string `query:"version" validate:"omitempty,slug"`
}
