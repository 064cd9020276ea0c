package config

import "fmt"

type CacheKeyStruct struct{}

// SessionKey returns the Redis key holding one respondent's session state.
func (r *CacheKeyStruct) SessionKey(token string) string {
	return fmt.Sprintf("vocatest:session:%s", token)
}

var CacheKey = &CacheKeyStruct{}

type WorkerKeyStruct struct {
	// SubmissionFeedQueue buffers completed-submission events for the
	// panel live feed worker.
	SubmissionFeedQueue string
}

var WorkerKey = &WorkerKeyStruct{
	SubmissionFeedQueue: "vocatest:submission_feed_queue",
}
