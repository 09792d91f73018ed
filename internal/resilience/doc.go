// Package resilience groups fault tolerance patterns for outbound
// dependencies. Currently it holds the circuit breaker guarding SMTP
// delivery, so a dead mail relay stops costing a connection attempt
// per comment.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.SMTPConfig())
//	_, err := cb.Execute(func() (interface{}, error) {
//	    return nil, dialer.DialAndSend(msg)
//	})
package resilience
