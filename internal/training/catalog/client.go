package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/olivermegias/trainingtop/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

var ErrExerciseNotFound = errors.New("exercise not found")

const (
	oneHour             = 60 * 60
	exerciseCacheExpire = oneHour * 1 // catalog entries barely ever change
)

// Client talks to the exercise catalog service and caches resolved
// exercises in memory.
type Client struct {
	cache      *freecache.Cache
	baseURL    string // e.g. https://catalog.trainingtop.app/api
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	megabyte := 1024 * 1024
	cacheSize := 20 * megabyte
	return &Client{
		cache:      freecache.NewCache(cacheSize),
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Resolve returns the catalog exercise for the given canonical key.
// Returns ErrExerciseNotFound when the catalog does not know the key.
func (c *Client) Resolve(ctx context.Context, key string) (exercise *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exerciseCatalog.resolve")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, fmt.Sprintf("resolved exercise: %s", key))
		}
	}()

	return c.getExercise(ctx, fmt.Sprintf("%s/exercises/%s", c.baseURL, url.PathEscape(key)), "exercise::"+key)
}

// ResolveInternal returns the catalog exercise for the given internal
// catalog id (the 24 char hex id used by the mobile app).
func (c *Client) ResolveInternal(ctx context.Context, internalID string) (exercise *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exerciseCatalog.resolveInternal")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, fmt.Sprintf("resolved internal exercise: %s", internalID))
		}
	}()

	return c.getExercise(ctx, fmt.Sprintf("%s/exercises/internal/%s", c.baseURL, url.PathEscape(internalID)), "internal::"+internalID)
}

func (c *Client) getExercise(ctx context.Context, exerciseURL, cacheKey string) (*Exercise, error) {
	if cachedBytes, err := c.cache.Get([]byte(cacheKey)); err == nil {
		exercise := &Exercise{}
		if err = json.Unmarshal(cachedBytes, exercise); err == nil {
			log.Tracef("found %s in exercise cache", cacheKey)
			return exercise, nil
		}
		log.Errorf("failed to unmarshal cached exercise %s: %s", cacheKey, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exerciseURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrExerciseNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exercise catalog returned status %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read exercise catalog response: %w", err)
	}

	exercise := &Exercise{}
	if err := json.Unmarshal(respBytes, exercise); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exercise catalog response: %w", err)
	}

	if err := c.cache.Set([]byte(cacheKey), respBytes, exerciseCacheExpire); err != nil {
		log.Errorf("failed to cache exercise %s: %s", cacheKey, err)
	}

	return exercise, nil
}
