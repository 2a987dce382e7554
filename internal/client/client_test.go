package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/media-client/internal/client"
	mediahttp "github.com/fivetwenty-io/media-client/internal/http"
	"github.com/fivetwenty-io/media-client/pkg/media"
)

const (
	testSubscription = "00000000-0000-0000-0000-000000000000"
	accountPrefix    = "/subscriptions/" + testSubscription +
		"/resourceGroups/rg/providers/Microsoft.Media/mediaServices/acct"
)

func strPtr(s string) *string { return &s }

func testConfig(baseURL string) *media.Config {
	return &media.Config{
		BaseURL:        baseURL,
		SubscriptionID: testSubscription,
		APIVersion:     media.DefaultAPIVersion,
		AcceptLanguage: media.DefaultAcceptLanguage,
	}
}

// newTestClient starts a server for handler and returns a client without
// retries pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := client.New(testConfig(server.URL), mediahttp.WithRetryConfig(0, time.Millisecond, time.Millisecond))
	require.NoError(t, err)

	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestStreamingPolicies_Create(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, accountPrefix+"/streamingPolicies/pol1", r.URL.Path)
		assert.Equal(t, "api-version=2018-07-01", r.URL.RawQuery)
		assert.Equal(t, "en-US", r.Header.Get("accept-language"))
		assert.NotEmpty(t, r.Header.Get("x-ms-client-request-id"))
		assert.Equal(t, "application/json; charset=utf-8", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, `{"properties":{"defaultContentKeyPolicyName":"cpk"}}`, string(body))

		writeJSON(t, w, http.StatusCreated, `{
			"id": "`+accountPrefix+`/streamingPolicies/pol1",
			"name": "pol1",
			"type": "Microsoft.Media/mediaservices/streamingPolicies",
			"properties": {
				"created": "2018-08-08T18:29:30.8501486Z",
				"defaultContentKeyPolicyName": "cpk"
			}
		}`)
	})

	policy, err := c.StreamingPolicies().Create(context.Background(), "rg", "acct", "pol1",
		&media.StreamingPolicy{DefaultContentKeyPolicyName: strPtr("cpk")}, nil)
	require.NoError(t, err)
	require.NotNil(t, policy)
	assert.Equal(t, "pol1", *policy.Name)
	assert.Equal(t, "cpk", *policy.DefaultContentKeyPolicyName)
	require.NotNil(t, policy.Created)
	assert.Equal(t, 2018, policy.Created.Year())
}

func TestStreamingPolicies_CreateRejectsBadInputWithoutSending(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	tests := []struct {
		name       string
		policyName string
		parameters *media.StreamingPolicy
		field      string
	}{
		{
			name:       "empty policy name",
			policyName: "",
			parameters: &media.StreamingPolicy{},
			field:      "streamingPolicyName",
		},
		{
			name:       "nil parameters",
			policyName: "pol1",
			parameters: nil,
			field:      "parameters",
		},
		{
			name:       "missing required protocol",
			policyName: "pol1",
			parameters: &media.StreamingPolicy{
				NoEncryption: &media.NoEncryption{EnabledProtocols: &media.EnabledProtocols{}},
			},
			field: "parameters.NoEncryption.EnabledProtocols.Download",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := c.StreamingPolicies().Create(context.Background(), "rg", "acct", tt.policyName, tt.parameters, nil)
			require.Error(t, err)
			assert.True(t, media.IsValidationError(err))

			var validationErr *media.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}

	assert.Equal(t, int32(0), calls.Load())
}

func TestStreamingPolicies_GetMissingReturnsNil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "error body", body: `{"error":{"code":"NotFound","message":"Streaming policy not found"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, accountPrefix+"/streamingPolicies/missing", r.URL.Path)
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(tt.body))
			})

			policy, err := c.StreamingPolicies().Get(context.Background(), "rg", "acct", "missing", nil)
			require.NoError(t, err)
			assert.Nil(t, policy)

			result, err := c.StreamingPolicies().GetWithResponse(context.Background(), "rg", "acct", "missing", nil)
			require.NoError(t, err)
			assert.Nil(t, result.Value)
			assert.Equal(t, http.StatusNotFound, result.Response.StatusCode)
			assert.Equal(t, http.MethodGet, result.Request.Method)
		})
	}
}

func TestStreamingPolicies_ErrorMessagePrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		code    string
		message string
	}{
		{
			name:    "nested message wins",
			status:  http.StatusInternalServerError,
			body:    `{"error":{"code":"InternalError","message":"boom"}}`,
			code:    "InternalError",
			message: "boom",
		},
		{
			name:    "code when no message",
			status:  http.StatusInternalServerError,
			body:    `{"error":{"code":"InternalError"}}`,
			code:    "InternalError",
			message: "InternalError",
		},
		{
			name:    "raw text body",
			status:  http.StatusBadGateway,
			body:    "upstream unavailable",
			message: "upstream unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			policy, err := c.StreamingPolicies().Get(context.Background(), "rg", "acct", "pol1", nil)
			require.Error(t, err)
			assert.Nil(t, policy)
			assert.Contains(t, err.Error(), "getting streaming policy")

			var opErr *media.OperationError
			require.ErrorAs(t, err, &opErr)
			assert.Equal(t, tt.status, opErr.StatusCode)
			assert.Equal(t, tt.code, opErr.Code)
			assert.Equal(t, tt.message, opErr.Message)
			assert.Equal(t, tt.status, media.StatusCode(err))
		})
	}
}

func TestStreamingPolicies_ListAcrossPages(t *testing.T) {
	t.Parallel()

	var (
		calls  atomic.Int32
		server *httptest.Server
	)

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		switch r.URL.Path {
		case accountPrefix + "/streamingPolicies":
			assert.Equal(t, "10", r.URL.Query().Get("$top"))
			assert.Equal(t, "properties/created gt 2018-01-01", r.URL.Query().Get("$filter"))
			assert.Equal(t, "trace", r.Header.Get("X-Trace"))

			writeJSON(t, w, http.StatusOK, `{
				"value": [{"name": "p1"}, {"name": "p2"}],
				"@odata.nextLink": "`+server.URL+`/next?page=2"
			}`)
		case "/next":
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "trace", r.Header.Get("X-Trace"))

			writeJSON(t, w, http.StatusOK, `{"value": [{"name": "p3"}]}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	t.Cleanup(server.Close)

	c, err := client.New(testConfig(server.URL), mediahttp.WithRetryConfig(0, time.Millisecond, time.Millisecond))
	require.NoError(t, err)

	opts := media.NewListOptions().
		WithTop(10).
		WithFilter("properties/created gt 2018-01-01").
		WithHeader("X-Trace", "trace")

	iterator := c.StreamingPolicies().ListAll(context.Background(), "rg", "acct", opts)

	policies, err := iterator.All()
	require.NoError(t, err)
	require.Len(t, policies, 3)
	assert.Equal(t, "p1", *policies[0].Name)
	assert.Equal(t, "p3", *policies[2].Name)
	assert.Equal(t, 2, iterator.Pages())
	assert.Equal(t, int32(2), calls.Load())
}

func TestStreamingPolicies_ListAndListNext(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/page2" {
			writeJSON(t, w, http.StatusOK, `{"value": [{"name": "p2"}]}`)

			return
		}

		writeJSON(t, w, http.StatusOK, `{"value": [{"name": "p1"}], "@odata.nextLink": "`+server.URL+`/page2"}`)
	}))
	t.Cleanup(server.Close)

	c, err := client.New(testConfig(server.URL))
	require.NoError(t, err)

	first, err := c.StreamingPolicies().List(context.Background(), "rg", "acct", nil)
	require.NoError(t, err)
	require.Len(t, first.Value, 1)
	assert.Equal(t, server.URL+"/page2", first.NextLink())

	second, err := c.StreamingPolicies().ListNext(context.Background(), first.NextLink(), nil)
	require.NoError(t, err)
	require.Len(t, second.Value, 1)
	assert.Empty(t, second.NextLink())

	_, err = c.StreamingPolicies().ListNext(context.Background(), "", nil)
	require.Error(t, err)
	assert.True(t, media.IsValidationError(err))
}

func TestStreamingPolicies_ListRejectsNegativeTop(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.StreamingPolicies().List(context.Background(), "rg", "acct", media.NewListOptions().WithTop(-1))
	require.ErrorIs(t, err, media.ErrInvalidOptions)
	assert.True(t, media.IsValidationError(err))
}

func TestStreamingPolicies_Delete(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, accountPrefix+"/streamingPolicies/pol1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.StreamingPolicies().Delete(context.Background(), "rg", "acct", "pol1", nil)
	require.NoError(t, err)

	result, err := c.StreamingPolicies().DeleteWithResponse(context.Background(), "rg", "acct", "pol1", nil)
	require.NoError(t, err)
	assert.Nil(t, result.Value)
	assert.Equal(t, http.StatusNoContent, result.Response.StatusCode)
}

func TestAssets_Operations(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assetPath := accountPrefix + "/assets/clip"

		switch {
		case r.Method == http.MethodPut && r.URL.Path == assetPath:
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]any{
				"properties": map[string]any{
					"description":      "intro clip",
					"storageAccountId": "/storage/main",
				},
			}, body)

			writeJSON(t, w, http.StatusCreated, `{
				"name": "clip",
				"properties": {
					"assetId": "a1b2",
					"description": "intro clip",
					"container": "asset-a1b2",
					"storageEncryptionFormat": "None"
				}
			}`)
		case r.Method == http.MethodPatch && r.URL.Path == assetPath:
			writeJSON(t, w, http.StatusOK, `{"name": "clip", "properties": {"alternateId": "alt"}}`)
		case r.Method == http.MethodPost && r.URL.Path == assetPath+"/listContainerSas":
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"permissions":"ReadWrite","expiryTime":"2030-01-02T03:04:05Z"}`, string(body))

			writeJSON(t, w, http.StatusOK, `{"assetContainerSasUrls": ["https://store.blob.core.windows.net/asset-a1b2?sig=x"]}`)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	})

	ctx := context.Background()

	asset, err := c.Assets().CreateOrUpdate(ctx, "rg", "acct", "clip", &media.Asset{
		AssetID:          strPtr("ignored"),
		Description:      strPtr("intro clip"),
		StorageAccountID: strPtr("/storage/main"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "a1b2", *asset.AssetID)
	assert.Equal(t, "asset-a1b2", *asset.Container)
	assert.Equal(t, media.AssetStorageEncryptionFormatNone, *asset.StorageEncryptionFormat)

	updated, err := c.Assets().Update(ctx, "rg", "acct", "clip", &media.Asset{AlternateID: strPtr("alt")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "alt", *updated.AlternateID)

	permission := media.AssetContainerPermissionReadWrite
	expiry := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	sas, err := c.Assets().ListContainerSas(ctx, "rg", "acct", "clip",
		&media.ListContainerSasInput{Permissions: &permission, ExpiryTime: &expiry}, nil)
	require.NoError(t, err)
	require.Len(t, sas.AssetContainerSasUrls, 1)
}

func TestAssets_ListContainerSasRejectsUnknownPermission(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	permission := media.AssetContainerPermission("Everything")

	_, err := c.Assets().ListContainerSas(context.Background(), "rg", "acct", "clip",
		&media.ListContainerSasInput{Permissions: &permission}, nil)
	require.Error(t, err)
	assert.True(t, media.IsValidationError(err))
}

func TestContentKeyPolicies_CreateOrUpdate(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, accountPrefix+"/contentKeyPolicies/ckp", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{
			"properties": {
				"description": "clear key",
				"options": [{
					"name": "opt",
					"configuration": {"@odata.type": "#Microsoft.Media.ContentKeyPolicyClearKeyConfiguration"},
					"restriction": {"@odata.type": "#Microsoft.Media.ContentKeyPolicyOpenRestriction"}
				}]
			}
		}`, string(body))

		writeJSON(t, w, http.StatusOK, `{
			"name": "ckp",
			"properties": {
				"policyId": "p-1",
				"options": [{
					"policyOptionId": "o-1",
					"name": "opt",
					"configuration": {"@odata.type": "#Microsoft.Media.ContentKeyPolicyClearKeyConfiguration"},
					"restriction": {"@odata.type": "#Microsoft.Media.ContentKeyPolicyOpenRestriction"}
				}]
			}
		}`)
	})

	policy, err := c.ContentKeyPolicies().CreateOrUpdate(context.Background(), "rg", "acct", "ckp", &media.ContentKeyPolicy{
		Description: strPtr("clear key"),
		Options: []media.ContentKeyPolicyOption{{
			Name:          strPtr("opt"),
			Configuration: map[string]any{"@odata.type": "#Microsoft.Media.ContentKeyPolicyClearKeyConfiguration"},
			Restriction:   map[string]any{"@odata.type": "#Microsoft.Media.ContentKeyPolicyOpenRestriction"},
		}},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "p-1", *policy.PolicyID)
	require.Len(t, policy.Options, 1)
	assert.Equal(t, "o-1", *policy.Options[0].PolicyOptionID)

	configuration, ok := policy.Options[0].Configuration.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "#Microsoft.Media.ContentKeyPolicyClearKeyConfiguration", configuration["@odata.type"])
}

func TestContentKeyPolicies_CreateRequiresOptions(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.ContentKeyPolicies().CreateOrUpdate(context.Background(), "rg", "acct", "ckp",
		&media.ContentKeyPolicy{Description: strPtr("no options")}, nil)
	require.Error(t, err)

	var validationErr *media.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "parameters.Options", validationErr.Field)
}

func TestLiveOutputs_CreateAccepted(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, accountPrefix+"/liveEvents/event1/liveOutputs/out1", r.URL.Path)

		var body struct {
			Properties map[string]any `json:"properties"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "archive", body.Properties["assetName"])
		assert.NotEmpty(t, body.Properties["archiveWindowLength"])
		assert.Equal(t, map[string]any{"fragmentsPerTsSegment": float64(5)}, body.Properties["hls"])
		assert.NotContains(t, body.Properties, "resourceState")

		w.WriteHeader(http.StatusAccepted)
	})

	window := time.Hour
	fragments := int32(5)
	state := media.LiveOutputResourceStateRunning

	output, err := c.LiveOutputs().Create(context.Background(), "rg", "acct", "event1", "out1", &media.LiveOutput{
		AssetName:           strPtr("archive"),
		ArchiveWindowLength: &window,
		Hls:                 &media.Hls{FragmentsPerTsSegment: &fragments},
		ResourceState:       &state,
	}, nil)
	require.NoError(t, err)
	assert.Nil(t, output)
}

func TestLiveOutputs_GetDecodesDuration(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{
			"name": "out1",
			"properties": {
				"archiveWindowLength": "PT25M",
				"outputSnapTime": 42,
				"resourceState": "Running",
				"provisioningState": "Succeeded"
			}
		}`)
	})

	output, err := c.LiveOutputs().Get(context.Background(), "rg", "acct", "event1", "out1", nil)
	require.NoError(t, err)
	require.NotNil(t, output.ArchiveWindowLength)
	assert.Equal(t, 25*time.Minute, *output.ArchiveWindowLength)
	assert.Equal(t, int64(42), *output.OutputSnapTime)
	assert.Equal(t, media.LiveOutputResourceStateRunning, *output.ResourceState)
}

func TestLiveOutputs_GetKeepsValueWithMistypedFields(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{
			"name": "out1",
			"properties": {"resourceState": 3, "created": 1533752970, "description": "d"}
		}`)
	})

	output, err := c.LiveOutputs().Get(context.Background(), "rg", "acct", "event1", "out1", nil)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "d", *output.Description)
	assert.Nil(t, output.ResourceState)
	assert.Nil(t, output.Created)
}

func TestAssets_GetNullBodyReturnsNil(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `null`)
	})

	asset, err := c.Assets().Get(context.Background(), "rg", "acct", "asset1", nil)
	require.NoError(t, err)
	assert.Nil(t, asset)
}

func TestAssets_GetEscapesReservedNameCharacters(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, accountPrefix+"/assets/a%2Bb%3Ac%40d", r.URL.EscapedPath())
		writeJSON(t, w, http.StatusOK, `{"name":"a+b:c@d"}`)
	})

	asset, err := c.Assets().Get(context.Background(), "rg", "acct", "a+b:c@d", nil)
	require.NoError(t, err)
	require.NotNil(t, asset)
	assert.Equal(t, "a+b:c@d", *asset.Name)
}

func TestMediaServices_GetAndSyncStorageKeys(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case accountPrefix:
			writeJSON(t, w, http.StatusOK, `{
				"name": "acct",
				"location": "westus",
				"tags": {"env": "test"},
				"properties": {
					"mediaServiceId": "ms-1",
					"storageAccounts": [{"id": "/storage/main", "type": "Primary"}]
				}
			}`)
		case accountPrefix + "/syncStorageKeys":
			assert.Equal(t, http.MethodPost, r.Method)

			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"id":"/storage/main"}`, string(body))
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	account, err := c.MediaServices().Get(context.Background(), "rg", "acct", nil)
	require.NoError(t, err)
	assert.Equal(t, "westus", *account.Location)
	assert.Equal(t, map[string]string{"env": "test"}, account.Tags)
	require.Len(t, account.StorageAccounts, 1)
	assert.Equal(t, media.StorageAccountTypePrimary, *account.StorageAccounts[0].Type)

	err = c.MediaServices().SyncStorageKeys(context.Background(), "rg", "acct",
		&media.SyncStorageKeysInput{ID: strPtr("/storage/main")}, nil)
	require.NoError(t, err)
}

func TestClient_Authentication(t *testing.T) {
	t.Parallel()

	t.Run("static access token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer static-token", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(server.Close)

		config := testConfig(server.URL)
		config.AccessToken = "static-token"

		c, err := client.New(config)
		require.NoError(t, err)

		_, err = c.Assets().Get(context.Background(), "rg", "acct", "clip", nil)
		require.NoError(t, err)
	})

	t.Run("client credentials need a tenant", func(t *testing.T) {
		t.Parallel()

		config := testConfig("https://management.azure.com")
		config.ClientID = "id"
		config.ClientSecret = "secret"

		_, err := client.New(config)
		require.ErrorIs(t, err, client.ErrTenantRequired)
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&media.Config{BaseURL: "https://management.azure.com"})
		require.ErrorIs(t, err, media.ErrInvalidConfig)
	})
}

func TestClient_CustomHeadersOverride(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "fr-FR", r.Header.Get("accept-language"))
		assert.Equal(t, "fixed-id", r.Header.Get("x-ms-client-request-id"))
		w.WriteHeader(http.StatusNotFound)
	})

	opts := &media.RequestOptions{CustomHeaders: map[string]string{
		"accept-language":        "fr-FR",
		"x-ms-client-request-id": "fixed-id",
	}}

	_, err := c.ContentKeyPolicies().Get(context.Background(), "rg", "acct", "ckp", opts)
	require.NoError(t, err)
}

func TestClient_DeserializationError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"name": 12}`)
	})

	_, err := c.Assets().Get(context.Background(), "rg", "acct", "clip", nil)
	require.Error(t, err)

	var deserializationErr *media.DeserializationError
	require.ErrorAs(t, err, &deserializationErr)
	assert.Equal(t, http.StatusOK, deserializationErr.Response.StatusCode)
	assert.False(t, errors.Is(err, media.ErrInvalidConfig))
}

func TestClient_FutureAndCallback(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"name": "pol1"}`)
	})

	ctx := context.Background()

	future := media.Go(ctx, func(ctx context.Context) (*media.StreamingPolicy, error) {
		return c.StreamingPolicies().Get(ctx, "rg", "acct", "pol1", nil)
	})

	policy, err := future.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pol1", *policy.Name)

	done := make(chan string, 1)

	media.Callback(ctx, func(ctx context.Context) (*media.StreamingPolicy, error) {
		return c.StreamingPolicies().Get(ctx, "rg", "acct", "pol1", nil)
	}, func(policy *media.StreamingPolicy, err error) {
		assert.NoError(t, err)
		done <- *policy.Name
	})

	select {
	case name := <-done:
		assert.Equal(t, "pol1", name)
	case <-time.After(5 * time.Second):
		t.Fatal("callback was not invoked")
	}
}
