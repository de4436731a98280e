package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// newTestClient points the client at a local server that replies with the
// given responder and records every GraphQL call it receives.
func newTestClient(t *testing.T, responder func(call recordedCall) (int, string)) (*Client, *[]recordedCall) {
	t.Helper()

	var calls []recordedCall
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/admin/api/2025-01/graphql.json", r.URL.Path)
		require.Equal(t, "shpat_test", r.Header.Get("X-Shopify-Access-Token"))

		var call recordedCall
		require.NoError(t, json.NewDecoder(r.Body).Decode(&call))
		calls = append(calls, call)

		status, body := responder(call)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client := NewClient(DefaultMarkerDefinition(), "2025-01", 5*time.Second, nil)
	client.baseURLFor = func(shop string) string { return server.URL }

	return client, &calls
}

func testAuth() *AuthContext {
	return &AuthContext{Shop: "herd-demo.myshopify.com", AccessToken: "shpat_test"}
}

func TestClient_SetMarker(t *testing.T) {
	client, calls := newTestClient(t, func(recordedCall) (int, string) {
		return http.StatusOK, `{"data":{"metafieldsSet":{"metafields":[{"id":"gid://shopify/Metafield/1"}],"userErrors":[]}}}`
	})

	require.NoError(t, client.SetMarker(context.Background(), testAuth(), 42, true))

	require.Len(t, *calls, 1)
	metafields := (*calls)[0].Variables["metafields"].([]any)
	require.Len(t, metafields, 1)
	field := metafields[0].(map[string]any)
	require.Equal(t, "gid://shopify/Product/42", field["ownerId"])
	require.Equal(t, "custom", field["namespace"])
	require.Equal(t, "most_popular_monthly", field["key"])
	require.Equal(t, "boolean", field["type"])
	require.Equal(t, "true", field["value"])
}

func TestClient_SetMarkerClearSendsFalse(t *testing.T) {
	client, calls := newTestClient(t, func(recordedCall) (int, string) {
		return http.StatusOK, `{"data":{"metafieldsSet":{"metafields":[],"userErrors":[]}}}`
	})

	require.NoError(t, client.SetMarker(context.Background(), testAuth(), 42, false))

	field := (*calls)[0].Variables["metafields"].([]any)[0].(map[string]any)
	require.Equal(t, "false", field["value"])
}

func TestClient_SetMarkerSurfacesUserErrors(t *testing.T) {
	client, _ := newTestClient(t, func(recordedCall) (int, string) {
		return http.StatusOK, `{"data":{"metafieldsSet":{"metafields":[],"userErrors":[{"field":["metafields","0","ownerId"],"message":"Owner does not exist","code":"INVALID"}]}}}`
	})

	err := client.SetMarker(context.Background(), testAuth(), 42, true)
	require.Error(t, err)

	var userErrs *UserErrorsError
	require.ErrorAs(t, err, &userErrs)
	require.Equal(t, "metafieldsSet", userErrs.Action)
	require.Len(t, userErrs.Errors, 1)
	require.ErrorContains(t, err, "Owner does not exist")
}

func TestClient_SetMarkerSurfacesTopLevelGraphQLErrors(t *testing.T) {
	client, _ := newTestClient(t, func(recordedCall) (int, string) {
		return http.StatusOK, `{"errors":[{"message":"Throttled"}]}`
	})

	err := client.SetMarker(context.Background(), testAuth(), 42, true)
	require.Error(t, err)
	require.ErrorContains(t, err, "Throttled")
}

func TestClient_SetMarkerNon200Status(t *testing.T) {
	client, _ := newTestClient(t, func(recordedCall) (int, string) {
		return http.StatusUnauthorized, `{"errors":"Invalid API key or access token"}`
	})

	err := client.SetMarker(context.Background(), testAuth(), 42, true)
	require.Error(t, err)
	require.ErrorContains(t, err, "status 401")
}

func TestClient_SetMarkerRequiresAuth(t *testing.T) {
	client := NewClient(DefaultMarkerDefinition(), "2025-01", time.Second, nil)

	err := client.SetMarker(context.Background(), nil, 42, true)
	require.Error(t, err)
	require.ErrorContains(t, err, "without auth context")
}

func TestClient_EnsureMarkerDefinitionAlreadyExists(t *testing.T) {
	client, calls := newTestClient(t, func(recordedCall) (int, string) {
		return http.StatusOK, `{"data":{"metafieldDefinitions":{"edges":[{"node":{"id":"gid://shopify/MetafieldDefinition/1","name":"Most Popular Monthly","namespace":"custom","key":"most_popular_monthly"}}]}}}`
	})

	require.NoError(t, client.EnsureMarkerDefinition(context.Background(), testAuth()))
	require.Len(t, *calls, 1)
}

func TestClient_EnsureMarkerDefinitionCreatesWhenMissing(t *testing.T) {
	client, calls := newTestClient(t, func(call recordedCall) (int, string) {
		if _, listing := call.Variables["definition"]; !listing {
			return http.StatusOK, `{"data":{"metafieldDefinitions":{"edges":[]}}}`
		}
		return http.StatusOK, `{"data":{"metafieldDefinitionCreate":{"createdDefinition":{"id":"gid://shopify/MetafieldDefinition/2"},"userErrors":[]}}}`
	})

	require.NoError(t, client.EnsureMarkerDefinition(context.Background(), testAuth()))

	require.Len(t, *calls, 2)
	def := (*calls)[1].Variables["definition"].(map[string]any)
	require.Equal(t, "Most Popular Monthly", def["name"])
	require.Equal(t, "custom", def["namespace"])
	require.Equal(t, "most_popular_monthly", def["key"])
	require.Equal(t, "boolean", def["type"])
	require.Equal(t, "PRODUCT", def["ownerType"])
}

func TestClient_EnsureMarkerDefinitionCreateUserErrors(t *testing.T) {
	client, _ := newTestClient(t, func(call recordedCall) (int, string) {
		if _, creating := call.Variables["definition"]; !creating {
			return http.StatusOK, `{"data":{"metafieldDefinitions":{"edges":[]}}}`
		}
		return http.StatusOK, `{"data":{"metafieldDefinitionCreate":{"createdDefinition":null,"userErrors":[{"field":["definition","key"],"message":"Key is in use","code":"TAKEN"}]}}}`
	})

	err := client.EnsureMarkerDefinition(context.Background(), testAuth())
	require.Error(t, err)

	var userErrs *UserErrorsError
	require.ErrorAs(t, err, &userErrs)
	require.Equal(t, "metafieldDefinitionCreate", userErrs.Action)
}

func TestClient_ProductTitles(t *testing.T) {
	client, calls := newTestClient(t, func(recordedCall) (int, string) {
		return http.StatusOK, `{"data":{"nodes":[{"id":"gid://shopify/Product/10","title":"Blue Hoodie"},null,{"id":"gid://shopify/Product/30","title":"Red Scarf"}]}}`
	})

	titles, err := client.ProductTitles(context.Background(), testAuth(), []uint64{10, 20, 30})
	require.NoError(t, err)
	require.Equal(t, map[uint64]string{10: "Blue Hoodie", 30: "Red Scarf"}, titles)

	gids := (*calls)[0].Variables["ids"].([]any)
	require.Equal(t, []any{
		"gid://shopify/Product/10",
		"gid://shopify/Product/20",
		"gid://shopify/Product/30",
	}, gids)
}

func TestClient_ProductTitlesEmptyInputSkipsCall(t *testing.T) {
	client, calls := newTestClient(t, func(recordedCall) (int, string) {
		t.Error("unexpected catalog call")
		return http.StatusOK, ""
	})

	titles, err := client.ProductTitles(context.Background(), testAuth(), nil)
	require.NoError(t, err)
	require.Empty(t, titles)
	require.Empty(t, *calls)
}

func TestProductGIDRoundTrip(t *testing.T) {
	gid := ProductGID(987654321)
	require.Equal(t, "gid://shopify/Product/987654321", gid)

	id, err := ParseProductGID(gid)
	require.NoError(t, err)
	require.Equal(t, uint64(987654321), id)
}

func TestParseProductGIDRejectsOtherTypes(t *testing.T) {
	_, err := ParseProductGID("gid://shopify/Collection/1")
	require.Error(t, err)
}
