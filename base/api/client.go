package api

import (
	"app/base/utils"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

type Client struct {
	HTTPClient     *http.Client
	Debug          bool
	DefaultHeaders map[string]string
}

// Request sends optional json encoded request and returns raw response body, response body is already closed
func (o *Client) Request(ctx context.Context, method, url string, requestPtr interface{},
	headers map[string]string) (*http.Response, []byte, error) {
	var body io.Reader
	if requestPtr != nil {
		buf := &bytes.Buffer{}
		err := json.NewEncoder(buf).Encode(requestPtr)
		if err != nil {
			return nil, nil, errors.Wrap(err, "Request json encoding failed")
		}
		body = buf
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "Request making failed")
	}
	if requestPtr != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	addHeaders(httpReq, o.DefaultHeaders)
	addHeaders(httpReq, headers)

	httpResp, err := utils.CallAPI(o.HTTPClient, httpReq, o.Debug)
	if err != nil {
		return httpResp, nil, errors.Wrap(err, "Request failed")
	}
	defer httpResp.Body.Close()

	bodyBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return httpResp, nil, errors.Wrap(err, "Response body reading failed")
	}
	return httpResp, bodyBytes, nil
}

func addHeaders(request *http.Request, headersMap map[string]string) {
	if headersMap == nil {
		return
	}
	for k, v := range headersMap {
		request.Header.Set(k, v)
	}
}
