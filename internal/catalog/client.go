package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const productGIDPrefix = "gid://shopify/Product/"

// API is the external product catalog boundary. Every call is fallible even
// when the outer transport call succeeds: the platform embeds userErrors
// inside success-shaped payloads, and those surface here as errors.
type API interface {
	// SetMarker sets or clears the boolean marker metafield on a product.
	// Setting the same value twice is an observable no-op on the platform
	// side, so callers may retry freely.
	SetMarker(ctx context.Context, auth *AuthContext, productID uint64, value bool) error

	// EnsureMarkerDefinition creates the marker metafield definition if it
	// does not already exist.
	EnsureMarkerDefinition(ctx context.Context, auth *AuthContext) error

	// ProductTitles resolves display titles for a set of product ids.
	// Unknown ids are simply absent from the result.
	ProductTitles(ctx context.Context, auth *AuthContext, ids []uint64) (map[uint64]string, error)
}

// UserError is one structured error embedded in a mutation payload.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
	Code    string   `json:"code"`
}

// UserErrorsError reports userErrors returned inside a success-shaped
// mutation response.
type UserErrorsError struct {
	Action string
	Errors []UserError
}

func (e *UserErrorsError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, ue := range e.Errors {
		field := strings.Join(ue.Field, ".")
		if field == "" {
			parts = append(parts, ue.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, ue.Message))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("catalog %s failed with user errors", e.Action)
	}
	return fmt.Sprintf("catalog %s failed: %s", e.Action, strings.Join(parts, "; "))
}

// Client talks to the Shopify Admin GraphQL API.
type Client struct {
	httpClient *http.Client
	apiVersion string
	definition MarkerDefinition

	// baseURLFor lets tests point a shop at a local server.
	baseURLFor func(shop string) string
}

// NewClient creates a catalog client. A nil httpClient gets a default with
// the supplied timeout; per-call deadlines still come from the caller's
// context.
func NewClient(definition MarkerDefinition, apiVersion string, timeout time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		httpClient: httpClient,
		apiVersion: apiVersion,
		definition: definition,
		baseURLFor: func(shop string) string {
			return "https://" + shop
		},
	}
}

// Definition returns the marker definition this client writes.
func (c *Client) Definition() MarkerDefinition {
	return c.definition
}

type graphqlRequestBody struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// graphql issues one Admin API call and decodes data into out.
// Top-level GraphQL errors are returned as an error even on HTTP 200.
func (c *Client) graphql(ctx context.Context, auth *AuthContext, query string, variables map[string]any, out any) error {
	if auth == nil || auth.AccessToken == "" {
		return fmt.Errorf("catalog call without auth context")
	}

	body, err := json.Marshal(graphqlRequestBody{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal graphql request: %w", err)
	}

	url := fmt.Sprintf("%s/admin/api/%s/graphql.json", c.baseURLFor(auth.Shop), c.apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", auth.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graphql request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read graphql response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graphql request returned status %d", resp.StatusCode)
	}

	var envelope graphqlResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("failed to decode graphql response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		msgs := make([]string, 0, len(envelope.Errors))
		for _, ge := range envelope.Errors {
			msgs = append(msgs, ge.Message)
		}
		return fmt.Errorf("graphql errors: %s", strings.Join(msgs, "; "))
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode graphql data: %w", err)
		}
	}

	return nil
}

const setMarkerMutation = `
mutation SetMostPopularMarker($metafields: [MetafieldsSetInput!]!) {
  metafieldsSet(metafields: $metafields) {
    metafields {
      id
    }
    userErrors {
      field
      message
      code
    }
  }
}`

// SetMarker writes the boolean marker metafield on one product.
func (c *Client) SetMarker(ctx context.Context, auth *AuthContext, productID uint64, value bool) error {
	variables := map[string]any{
		"metafields": []map[string]any{
			{
				"ownerId":   ProductGID(productID),
				"namespace": c.definition.Namespace,
				"key":       c.definition.Key,
				"type":      "boolean",
				"value":     strconv.FormatBool(value),
			},
		},
	}

	var data struct {
		MetafieldsSet struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"metafieldsSet"`
	}
	if err := c.graphql(ctx, auth, setMarkerMutation, variables, &data); err != nil {
		return err
	}

	if len(data.MetafieldsSet.UserErrors) > 0 {
		return &UserErrorsError{Action: "metafieldsSet", Errors: data.MetafieldsSet.UserErrors}
	}

	return nil
}

const markerDefinitionQuery = `
query GetMetafieldDefinitions {
  metafieldDefinitions(first: 100, ownerType: PRODUCT) {
    edges {
      node {
        id
        name
        namespace
        key
      }
    }
  }
}`

const createMarkerDefinitionMutation = `
mutation CreateMetafieldDefinition($definition: MetafieldDefinitionInput!) {
  metafieldDefinitionCreate(definition: $definition) {
    createdDefinition {
      id
      name
      namespace
      key
    }
    userErrors {
      field
      message
      code
    }
  }
}`

// EnsureMarkerDefinition creates the marker metafield definition when absent.
// A no-op when a definition with the configured namespace/key already exists.
func (c *Client) EnsureMarkerDefinition(ctx context.Context, auth *AuthContext) error {
	var data struct {
		MetafieldDefinitions struct {
			Edges []struct {
				Node struct {
					ID        string `json:"id"`
					Namespace string `json:"namespace"`
					Key       string `json:"key"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"metafieldDefinitions"`
	}
	if err := c.graphql(ctx, auth, markerDefinitionQuery, nil, &data); err != nil {
		return fmt.Errorf("listing metafield definitions: %w", err)
	}

	for _, edge := range data.MetafieldDefinitions.Edges {
		if edge.Node.Namespace == c.definition.Namespace && edge.Node.Key == c.definition.Key {
			return nil
		}
	}

	variables := map[string]any{
		"definition": map[string]any{
			"name":        c.definition.Name,
			"namespace":   c.definition.Namespace,
			"key":         c.definition.Key,
			"description": c.definition.Description,
			"type":        "boolean",
			"ownerType":   "PRODUCT",
		},
	}

	var created struct {
		MetafieldDefinitionCreate struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"metafieldDefinitionCreate"`
	}
	if err := c.graphql(ctx, auth, createMarkerDefinitionMutation, variables, &created); err != nil {
		return fmt.Errorf("creating metafield definition: %w", err)
	}

	if len(created.MetafieldDefinitionCreate.UserErrors) > 0 {
		return &UserErrorsError{
			Action: "metafieldDefinitionCreate",
			Errors: created.MetafieldDefinitionCreate.UserErrors,
		}
	}

	return nil
}

const productTitlesQuery = `
query GetProductTitles($ids: [ID!]!) {
  nodes(ids: $ids) {
    ... on Product {
      id
      title
    }
  }
}`

// ProductTitles resolves display titles for the given product ids.
func (c *Client) ProductTitles(ctx context.Context, auth *AuthContext, ids []uint64) (map[uint64]string, error) {
	if len(ids) == 0 {
		return map[uint64]string{}, nil
	}

	gids := make([]string, 0, len(ids))
	for _, id := range ids {
		gids = append(gids, ProductGID(id))
	}

	var data struct {
		Nodes []*struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"nodes"`
	}
	if err := c.graphql(ctx, auth, productTitlesQuery, map[string]any{"ids": gids}, &data); err != nil {
		return nil, err
	}

	titles := make(map[uint64]string, len(data.Nodes))
	for _, node := range data.Nodes {
		if node == nil {
			// Deleted or inaccessible products come back as null nodes.
			continue
		}
		id, err := ParseProductGID(node.ID)
		if err != nil {
			continue
		}
		titles[id] = node.Title
	}

	return titles, nil
}

// ProductGID formats a numeric product id as a global catalog id.
func ProductGID(id uint64) string {
	return productGIDPrefix + strconv.FormatUint(id, 10)
}

// ParseProductGID extracts the numeric product id from a global catalog id.
func ParseProductGID(gid string) (uint64, error) {
	raw, ok := strings.CutPrefix(gid, productGIDPrefix)
	if !ok {
		return 0, fmt.Errorf("not a product gid: %q", gid)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product gid %q: %w", gid, err)
	}
	return id, nil
}
