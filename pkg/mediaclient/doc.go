// Package mediaclient provides the primary entry point for constructing an
// Azure Media Services client that implements the media.Client interface.
//
// It applies configuration defaults, builds the interceptor chain (metrics,
// rate limiting, logging and optional NATS call events) and hands the result
// to the internal client implementation.
//
// Quick start
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
//
//	  // With a token you already have:
//	  cli, err := mediaclient.NewWithAccessToken(ctx, "subscription-id", "eyJ0eXAi...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or as a service principal:
//	  cli, err = mediaclient.New(ctx, &media.Config{
//	    SubscriptionID: "subscription-id",
//	    TenantID:       "contoso.onmicrosoft.com",
//	    ClientID:       "app-id",
//	    ClientSecret:   "secret",
//	    RateLimit:      10,
//	    EventsURL:      "nats://127.0.0.1:4222",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  assets, err := cli.Assets().List(ctx, "rg", "account", nil)
//	  if err != nil { log.Fatal(err) }
//	  log.Printf("%d assets", len(assets.Value))
//	}
//
// Endpoint handling
//
// BaseURL may be given without a scheme ("management.azure.com"); "https://"
// is assumed. A trailing slash is removed. An empty BaseURL targets the
// public Azure Resource Manager endpoint.
//
// Call events
//
// When EventsURL is set every response is published as a JSON media.CallEvent
// on EventsSubject (default "media.calls"). Publishing is best effort and
// never fails a call. Close drains the connection.
package mediaclient
