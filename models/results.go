package models

// Acknowledgment shapes mirroring what the MongoDB driver reports for
// writes. Handlers return these verbatim as the response body, so the JSON
// field names follow the driver's wire vocabulary.

// InsertResult acknowledges a single-document insert.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

// UpdateResult acknowledges a replace-or-create. UpsertedID is set only
// when the operation created a new document.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

// DeleteResult acknowledges a delete. DeletedCount is zero when nothing
// matched, which is not an error.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Counts reports the size of each collection. The three counts are taken
// independently, with no cross-collection consistency guarantee.
type Counts struct {
	Services int64 `json:"services"`
	Reviews  int64 `json:"reviews"`
	Users    int64 `json:"users"`
}
