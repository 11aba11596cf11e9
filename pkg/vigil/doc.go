// Package vigil provides types, interfaces, and helpers for working with
// the Vigil security platform API.
//
// # Overview
//
// The vigil package defines the uniform Result envelope every operation
// returns, the error taxonomy and status classification, the normalized
// Pagination shape with extractors for both wire encodings the platform
// uses, the log redactor, and the auto-pagination aggregator. Concrete
// resource clients are constructed by the vigilclient package, which
// wires configuration and the retrying transport. Most consumers should
// import vigilclient and then interact with the resource client
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/arclight-io/vigil-client/pkg/vigil"
//	  "github.com/arclight-io/vigil-client/pkg/vigilclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := vigilclient.New(&vigil.Config{
//	    APIKey:  "...",
//	    BaseURL: "https://api.vigil.example.com",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  res := cli.Alerts().List(ctx, &vigil.AlertListParams{Severity: "high"})
//	  if !res.Success { log.Fatal(res.Err()) }
//	  _ = res.Data
//	}
//
// # Envelopes
//
// Operations never return transport or API failures as Go errors; every
// call yields a Result whose Error field carries one of six kinds
// (BAD_REQUEST, UNAUTHORIZED, FORBIDDEN, NOT_FOUND, SERVER_ERROR,
// NETWORK_ERROR). Helpers such as IsNotFound and IsUnauthorized branch on
// common cases, and Result.Err bridges back into the error world when a
// caller prefers it.
//
// # Retries
//
// The transport retries transport failures and the retryable statuses
// (408, 417, 429, and 5xx) with exponential backoff, up to the configured
// MaxRetries. Non-retryable statuses surface on the first attempt.
// Setting MaxRetries to 0 disables retrying while keeping classification
// intact.
//
// # Pagination
//
// Search operations populate Result.Pagination from response headers.
// List operations have ListAll variants that drive FetchAllPages, which
// merges up to MaxAutoPages pages into one envelope and degrades to a
// partial result if a later page fails.
package vigil
