package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/recipebox/web/internal/models"
	"github.com/recipebox/web/internal/telemetry"
)

// DefaultRecipeAPIBaseURL is the forkify recipe endpoint; the identifier is appended as a path segment.
const DefaultRecipeAPIBaseURL = "https://forkify-api.herokuapp.com/api/v2/recipes"

const maxRecipeBody = 1 << 20

// ErrRecipeUnavailable covers every way a recipe can fail to load: transport
// errors, non-2xx statuses, undecodable bodies and recipes without ingredients.
var ErrRecipeUnavailable = errors.New("recipe unavailable")

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RecipeFetcher loads one recipe by identifier.
type RecipeFetcher interface {
	Fetch(ctx context.Context, id string) (*models.Recipe, error)
}

// RecipeClient reads recipes from the forkify API.
type RecipeClient struct {
	baseURL string
	http    HTTPClient
	tracer  trace.Tracer
	fetches metric.Int64Counter
}

func NewRecipeClient(baseURL string, httpClient HTTPClient) *RecipeClient {
	if baseURL == "" {
		baseURL = DefaultRecipeAPIBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	fetches, err := otel.Meter(telemetry.InstrumentationName).Int64Counter(
		"recipe.fetches",
		metric.WithDescription("Upstream recipe fetches by outcome"),
	)
	if err != nil {
		fetches, _ = noop.Meter{}.Int64Counter("recipe.fetches")
	}

	return &RecipeClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tracer:  otel.Tracer(telemetry.InstrumentationName),
		fetches: fetches,
	}
}

// Fetch issues a single GET for id. Every failure wraps ErrRecipeUnavailable.
func (c *RecipeClient) Fetch(ctx context.Context, id string) (*models.Recipe, error) {
	ctx, span := c.tracer.Start(ctx, "recipe.fetch", trace.WithAttributes(attribute.String("recipe.id", id)))
	defer span.End()

	recipe, err := c.fetch(ctx, id)

	outcome := "loaded"
	if err != nil {
		outcome = "unavailable"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	c.fetches.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))

	return recipe, err
}

func (c *RecipeClient) fetch(ctx context.Context, id string) (*models.Recipe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrRecipeUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecipeUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: upstream status %d", ErrRecipeUnavailable, resp.StatusCode)
	}

	var env models.RecipeEnvelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxRecipeBody)).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrRecipeUnavailable, err)
	}

	recipe := env.Data.Recipe
	if len(recipe.Ingredients) == 0 {
		return nil, fmt.Errorf("%w: recipe has no ingredients", ErrRecipeUnavailable)
	}

	return &recipe, nil
}
