package sparql

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Admin talks to the Fuseki administration API ("/$/datasets") to provision
// datasets at startup.
type Admin struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// NewAdmin creates an Admin client for the given server base URL
// (e.g. "http://localhost:3030").
func NewAdmin(baseURL, username, password string) *Admin {
	return &Admin{
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		password:   password,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type datasetsResponse struct {
	Datasets []struct {
		Name string `json:"ds.name"`
	} `json:"datasets"`
}

// DatasetExists reports whether a dataset with the given name is registered.
func (a *Admin) DatasetExists(ctx context.Context, name string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/$/datasets", http.NoBody)
	if err != nil {
		return false, fmt.Errorf("creating datasets request: %w", err)
	}
	a.setAuth(req)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("listing datasets: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("datasets endpoint returned status %d", resp.StatusCode)
	}

	var result datasetsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&result); err != nil {
		return false, fmt.Errorf("decoding datasets response: %w", err)
	}

	// Fuseki reports names with a leading slash.
	want := "/" + strings.TrimPrefix(name, "/")
	for _, ds := range result.Datasets {
		if ds.Name == want {
			return true, nil
		}
	}

	return false, nil
}

// CreateDataset registers a new persistent (tdb2) dataset.
func (a *Admin) CreateDataset(ctx context.Context, name string) error {
	form := url.Values{"dbName": {name}, "dbType": {"tdb2"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/$/datasets", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating dataset request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	a.setAuth(req)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("creating dataset: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dataset creation returned status %d", resp.StatusCode)
	}

	return nil
}

// EnsureDataset creates the dataset if it is not already registered.
func (a *Admin) EnsureDataset(ctx context.Context, name string) error {
	exists, err := a.DatasetExists(ctx, name)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	return a.CreateDataset(ctx, name)
}

func (a *Admin) setAuth(req *http.Request) {
	if a.username != "" {
		req.SetBasicAuth(a.username, a.password)
	}
}
