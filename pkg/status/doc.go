/*
Package status tracks the outcome of a scaffold run.

🎯 Purpose:
- Collects one scaffold.Result per processed file
- Counts applied (copied or linked) and skipped files
- Formats results, progress and errors for the CLI

🔍 Example:

	summary := status.NewSummary(nil)
	summary.Track(ctx, res)
	fmt.Println(summary) // Scaffolded 3 of 4 files (1 skipped)
*/
package status
