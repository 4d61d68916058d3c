package models

import "time"

// QueryLogTimeFormat is the timestamp layout used in the query log file.
const QueryLogTimeFormat = "2006-01-02 15:04:05"

// NotFoundResultSummary is recorded when a lookup matched no dataset record.
const NotFoundResultSummary = "未找到结果"

// QueryLogEntry is one append-only audit record of a lookup attempt.
// Entries are never mutated or deleted; insertion order equals chronological
// order.
type QueryLogEntry struct {
	// Username is the account that performed the lookup.
	Username string `json:"username"`

	// CAS is the identifier that was queried, as entered by the user.
	CAS string `json:"cas_number"`

	// UsagePurpose is the declared purpose of use. Optional in persisted
	// form: logs written before the column existed load with an empty value.
	UsagePurpose string `json:"usage_purpose"`

	// Timestamp is the server-assigned creation time of the record.
	Timestamp time.Time `json:"timestamp"`

	// ResultSummary is either "<名称> - 毒性分级: <级>" or
	// [NotFoundResultSummary].
	ResultSummary string `json:"result_summary"`
}
