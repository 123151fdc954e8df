package stockbot

import "fmt"

// Milestones appended to the progress log while articles are processed.
const (
	MilestoneStarted   = "Data Loading...Started.."
	MilestoneSplitting = "Text Splitter...Started...✅✅✅"
	MilestoneEmbedding = "Embedding Vector Started Building...✅✅✅"
)

// ProgressFunc is called with each milestone as it is appended.
type ProgressFunc func(message string)

// CompletionMilestone returns the final milestone of a successful run.
func CompletionMilestone(documentsCount int) string {
	return fmt.Sprintf("✅ Done! Documents count: %d", documentsCount)
}

// FailureMilestone returns the milestone recorded when processing fails.
func FailureMilestone(err error) string {
	return fmt.Sprintf("❌ Error processing URLs: %s. Check backend logs.", ErrorMessage(err))
}
