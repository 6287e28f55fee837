// Package resilience provides fault tolerance patterns for calls that leave
// the process: circuit breakers for the payment provider and chat webhooks,
// and retry with exponential backoff for transient database and network
// failures.
//
//	cb := circuitbreaker.New(circuitbreaker.StripeAPIConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callProvider()
//	})
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return db.PingContext(ctx)
//	})
package resilience
