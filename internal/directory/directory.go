// Package directory indexes HopeBot's service listings in Elasticsearch and
// searches them.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hopeconnect/internal/common/errors"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

type Config struct {
	IndexName  string
	MaxResults int
	Timeout    time.Duration
}

type Directory struct {
	config Config
	client *elasticsearch.Client
	logger logger.Logger
}

func New(config Config, client *elasticsearch.Client, log logger.Logger) *Directory {
	if config.MaxResults <= 0 {
		config.MaxResults = 20
	}
	if config.Timeout <= 0 {
		config.Timeout = 3 * time.Second
	}
	return &Directory{
		config: config,
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "directory", "index": config.IndexName}),
	}
}

// EnsureIndex creates the index with its mapping if it does not exist.
func (d *Directory) EnsureIndex(ctx context.Context) error {
	res, err := d.client.Indices.Exists([]string{d.config.IndexName}, d.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return errors.NewElasticsearchConnectionFailedError(err)
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := json.Marshal(indexMapping)
	res, err = d.client.Indices.Create(d.config.IndexName,
		d.client.Indices.Create.WithBody(bytes.NewReader(body)),
		d.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return errors.NewElasticsearchConnectionFailedError(err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return errors.NewSearchQueryFailedError("create_index", responseError(res))
	}

	d.logger.Info("directory index created", nil)
	return nil
}

// Index bulk-writes entries, replacing documents with the same id.
func (d *Directory) Index(ctx context.Context, entries []models.DirectoryEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, e := range entries {
		meta := map[string]interface{}{"index": map[string]interface{}{"_id": e.ID}}
		if err := enc.Encode(meta); err != nil {
			return 0, fmt.Errorf("encode bulk meta: %w", err)
		}
		if err := enc.Encode(e); err != nil {
			return 0, fmt.Errorf("encode entry %s: %w", e.ID, err)
		}
	}

	res, err := d.client.Bulk(&buf,
		d.client.Bulk.WithIndex(d.config.IndexName),
		d.client.Bulk.WithRefresh("true"),
		d.client.Bulk.WithContext(ctx),
	)
	if err != nil {
		return 0, errors.NewElasticsearchConnectionFailedError(err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, errors.NewSearchQueryFailedError("bulk_index", responseError(res))
	}

	var bulk struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			Status int `json:"status"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulk); err != nil {
		return 0, errors.NewSearchQueryFailedError("bulk_index", err)
	}

	failed := 0
	for _, item := range bulk.Items {
		for _, result := range item {
			if result.Status >= 300 {
				failed++
			}
		}
	}
	if bulk.Errors || failed > 0 {
		d.logger.Warn("some directory entries were not indexed", map[string]interface{}{"failed": failed})
	}

	indexed := len(entries) - failed
	d.logger.Info("directory indexed", map[string]interface{}{"entries": indexed})
	return indexed, nil
}

// Search runs a free-text query, optionally restricted to one location.
func (d *Directory) Search(ctx context.Context, text, location string) (*models.DirectorySearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, d.config.Timeout)
	defer cancel()

	body, err := json.Marshal(buildSearchQuery(text, location))
	if err != nil {
		return nil, errors.NewSearchQueryFailedError("directory_search", err)
	}

	req := esapi.SearchRequest{
		Index: []string{d.config.IndexName},
		Body:  bytes.NewReader(body),
		Size:  &d.config.MaxResults,
	}
	res, err := req.Do(ctx, d.client)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewTimeoutError("elasticsearch", err)
		}
		return nil, errors.NewElasticsearchConnectionFailedError(err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, errors.NewIndexNotFoundError(d.config.IndexName)
	}
	if res.IsError() {
		return nil, errors.NewSearchQueryFailedError("directory_search", responseError(res))
	}

	var parsed struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.DirectoryEntry `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.NewSearchQueryFailedError("directory_search", err)
	}

	result := &models.DirectorySearchResult{
		Total:   parsed.Hits.Total.Value,
		Entries: make([]models.DirectoryEntry, 0, len(parsed.Hits.Hits)),
	}
	for _, hit := range parsed.Hits.Hits {
		result.Entries = append(result.Entries, hit.Source)
	}
	return result, nil
}

func responseError(res *esapi.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	return fmt.Errorf("%s: %s", res.Status(), bytes.TrimSpace(raw))
}
