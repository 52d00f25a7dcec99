package aforro

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// contains http utils to deal with remote services

// Jwget performs an HTTP GET request with the given headers and unmarshals
// the JSON response into the provided data structure.
func Jwget(client *http.Client, addr string, header http.Header, data any) error {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("cannot create http request %q: %w", addr, err)
	}
	if header != nil {
		req.Header = header
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot execute http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}

	// reading in a buffer first, a decode error can then report the payload size.
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return fmt.Errorf("cannot read receiving http body: %w", err)
	}
	if err := json.Unmarshal(buf.Bytes(), data); err != nil {
		return fmt.Errorf("cannot decode json payload (%d bytes): %w", buf.Len(), err)
	}
	return nil
}
