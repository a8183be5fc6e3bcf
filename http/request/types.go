package request

import "time"

type (
	Request struct {
		Url     string
		Method  string
		Timeout time.Duration
		Headers []Headers
		Payload interface{}
	}

	Headers struct {
		Key   string
		Value string
	}
)
