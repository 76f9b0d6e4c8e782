package fsx

import (
	"fmt"
	"io"
	"net/http"
)

// HTTP fetches resources over http/https. The name passed to ReadFile is the
// full URL.
type HTTP struct {
	Client *http.Client
}

func (h *HTTP) ReadFile(name string) ([]byte, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(name)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error fetching %s: %s", name, http.StatusText(resp.StatusCode))
	}
	d, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}
	return d, nil
}
