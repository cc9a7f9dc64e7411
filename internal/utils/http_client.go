package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// userAgent identifies outbound requests made by go-time-diary.
const userAgent = "go-time-diary"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient(5 * time.Second)
//	resp, err := client.R().Get("https://example.com/image.png")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient whose requests time out after timeout.
// A zero timeout leaves requests unbounded. Requests are never retried.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
