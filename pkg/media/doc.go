// Package media provides types, interfaces, and helpers for working with the
// Azure Media Services management API.
//
// # Overview
//
// The media package defines the models (Asset, StreamingPolicy,
// ContentKeyPolicy, LiveOutput, MediaService) and the interfaces of the
// operation groups (AssetsClient, StreamingPoliciesClient, ...). The concrete
// implementation is built by the mediaclient package, which wires
// configuration, authentication and transport.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/media-client/pkg/media"
//	  "github.com/fivetwenty-io/media-client/pkg/mediaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := mediaclient.New(ctx, &media.Config{
//	    SubscriptionID: "00000000-0000-0000-0000-000000000000",
//	    TenantID:       "contoso.onmicrosoft.com",
//	    ClientID:       "...",
//	    ClientSecret:   "...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  policy, err := cli.StreamingPolicies().Get(ctx, "rg", "account", "policy", nil)
//	  if err != nil { log.Fatal(err) }
//	  if policy == nil { log.Print("policy does not exist") }
//	}
//
// # Pagination
//
// List operations return one page. ListNext follows a continuation link, and
// ListAll wraps both in a PaginationIterator:
//
//	it := cli.Assets().ListAll(ctx, "rg", "account", media.NewListOptions().WithTop(50))
//	for it.HasNext() {
//	  asset, err := it.Next()
//	  if err != nil { break }
//	  _ = asset
//	}
//
// # Calling conventions
//
// Every operation has a plain form returning the decoded model and a
// WithResponse form returning a Result that also carries the Request and
// Response descriptors. Go and Callback run any of them asynchronously:
//
//	f := media.Go(ctx, func(ctx context.Context) (*media.Asset, error) {
//	  return cli.Assets().Get(ctx, "rg", "account", "asset", nil)
//	})
//	asset, err := f.Await(ctx)
//
// # Errors
//
// ValidationError is returned before any request is sent. OperationError
// carries the status code, service error code and message of a rejected call.
// DeserializationError and TransportError cover unreadable bodies and calls
// that got no response. IsNotFound, IsConflict and StatusCode help branch on
// them.
//
// # Interceptors
//
// The transport runs an InterceptorChain around each call. The package ships
// logging, header, metrics, rate limiting and event publishing interceptors.
package media
