// Package http provides a transport-agnostic model for describing,
// transforming, and executing HTTP requests, with timing metrics captured
// per execution.
//
// A request is described declaratively, optionally reshaped by a chain of
// request builders, executed through a pluggable Executor, and returned as a
// Response envelope pairing the original description with the raw result and
// elapsed-time metrics. Response modifiers transform envelopes after the
// fact. None of the pieces know about each other beyond these contracts, so
// auth, logging, and post-processing layer on without touching the model.
//
// Basic usage:
//
//	client := http.NewClient(
//	    http.WithTimeout(10*time.Second),
//	    http.WithHeader("User-Agent", "courier"),
//	)
//
//	req := http.NewRequest(http.MethodPost, "/users").
//	    WithBaseURL("https://api.example.com").
//	    WithHeader(http.Accept("application/json")).
//	    WithParam("name", "John")
//
//	resp, err := client.Do(context.Background(), req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Status: %d\n", resp.Result.StatusCode)
//	fmt.Printf("Elapsed: %v\n", resp.Metrics.Duration)
//
// With builders and modifiers:
//
//	desc := http.ApplyBuilders(req,
//	    modifier.BearerAuth("token"),
//	    modifier.RequestID{},
//	)
//	resp, err := client.Do(ctx, desc)
//	if err == nil {
//	    resp = http.ApplyModifiers(resp, myModifier)
//	}
//
// Thread safety:
//
// Client is safe for concurrent use; each execution operates on its own
// description and produces its own envelope. Builders and modifiers are
// expected to be side-effect-free so a shared chain never couples concurrent
// executions.
package http
