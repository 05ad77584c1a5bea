package utils

import (
	"log"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// ProbeFileURL issues a HEAD request against an uploaded file's public
// URL and returns its Content-Type and Content-Length. Used to fill in
// asset metadata the client did not supply. Best effort: any failure
// returns zero values and the caller proceeds without them.
func ProbeFileURL(fileURL string) (string, int64) {
	client := resty.New().SetTimeout(5 * time.Second)

	resp, err := client.R().Head(fileURL)
	if err != nil {
		log.Printf("Asset probe failed for %s: %v", fileURL, err)
		return "", 0
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		log.Printf("Asset probe for %s returned status %d", fileURL, resp.StatusCode())
		return "", 0
	}

	contentType := resp.Header().Get("Content-Type")

	var size int64
	if cl := resp.Header().Get("Content-Length"); cl != "" {
		if parsed, err := strconv.ParseInt(cl, 10, 64); err == nil {
			size = parsed
		}
	}

	return contentType, size
}
