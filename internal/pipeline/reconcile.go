package pipeline

import (
	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/internal/extract"
)

// reconcile picks the winning field set after an escalation. The AI result
// replaces the local one wholesale when it parsed; field values are never
// blended across tiers. The local set is kept on the result metadata so a
// reviewer can compare both.
func reconcile(res *extract.Result, local extract.FieldSet, ai extract.AIResult) {
	res.Metadata.LocalFields = local.Clone()
	res.Metadata.ModelName = ai.ModelName
	res.Metadata.PromptTruncated = ai.Truncated
	res.RawResponse = ai.RawResponse

	if ai.ErrKind != extract.AIErrNone {
		// The AI tier failed; fall back to whatever the local tier found
		// and force a human look.
		res.Fields = local
		res.Status = constants.StatusFailed
		res.Error = ai.Err
		res.Metadata.Tier = constants.TierLocal
		res.Metadata.NeedsReview = true
		return
	}

	res.Fields = ai.Fields
	res.Overall = ai.Confidence
	res.Status = constants.StatusAIOK
	res.Metadata.Tier = constants.TierAI
}
