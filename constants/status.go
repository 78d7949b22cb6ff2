package constants

// ExtractionStatus is the canonical status for rows in extraction_results.
type ExtractionStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending   ExtractionStatus = "PENDING"   // row created, not yet claimed
	StatusRunning   ExtractionStatus = "RUNNING"   // claimed by an in-flight request
	StatusLocalOK   ExtractionStatus = "LOCAL_OK"  // local tier accepted, no escalation
	StatusEscalated ExtractionStatus = "ESCALATED" // local tier rejected, AI tier in flight
	StatusAIOK      ExtractionStatus = "AI_OK"     // AI tier completed
	StatusFailed    ExtractionStatus = "FAILED"    // terminal failure
	StatusReviewed  ExtractionStatus = "REVIEWED"  // human correction applied
)

// Tier identifies which extraction strategy produced the stored fields.
type Tier string

const (
	TierLocal Tier = "local"
	TierAI    Tier = "ai"
)

// Source tags for ExtractedField provenance.
const (
	SourceAIModel      = "ai-model"
	SourceManualReview = "manual-review"
)
