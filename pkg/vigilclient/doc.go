// Package vigilclient creates concrete Vigil API clients.
//
// It validates a vigil.Config, normalizes the base URL, and wires the
// retrying transport and per-resource clients behind the vigil.Client
// interface.
//
//	cli, err := vigilclient.New(&vigil.Config{
//	  APIKey:  os.Getenv("VIGIL_API_KEY"),
//	  BaseURL: "https://api.vigil.example.com",
//	})
//	if err != nil {
//	  log.Fatal(err)
//	}
//
//	res := cli.Tenants().List(context.Background())
//
// Construction fails fast on invalid configuration: a missing API key, a
// missing base URL, or a base URL that does not use HTTPS. The retry
// bound follows the precedence explicit Config.MaxRetries, then the
// VIGIL_MAX_RETRIES environment variable, then a default of 1.
package vigilclient
