// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package generator talks to the remote lotto generation service.

# Protocol

One request per seed:

	GET {base}/main?string={seed}
	passwd: {secret}

A 2xx answer carries a JSON object whose res field holds the numbers:

	{"res": [3, 14, 15, 26, 35, 41]}

# Client

The secret is injected once at construction and never leaves the client:

	client, err := generator.NewClient(generator.Config{
		BaseURL: cfg.GeneratorURL,
		Secret:  cfg.GeneratorSecret,
		Timeout: cfg.GeneratorTimeout,
	})
	numbers, err := client.Generate(ctx, seed)

Every call is a single attempt. Callers decide whether to retry.

# Errors

Failures are *Error values with a Kind:

  - KindNetwork: transport errors, timeouts, cancellation
  - KindServer: non-2xx status, malformed body, missing or empty res

Error() is always the generic Message shown to users. The cause is
available through errors.Unwrap and is logged with the seed length and a
fingerprint of the secret, never the seed or the secret itself.

Func adapts a plain function to Generator for tests and in-process use.
*/
package generator
