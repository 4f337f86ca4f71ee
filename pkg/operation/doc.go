/*
Package operation orchestrates a scaffold run.

	+-------------+      +-------------+      +---------------+
	|  Manifest   | ---> |   Runner    | ---> |   scaffold    |
	|  (config)   |      | (preflight) |      |   .Process    |
	+-------------+      +------+------+      +---------------+
	                            |
	                     +------+------+
	                     |   Summary   |
	                     |  (status)   |
	                     +-------------+

🔄 Flow:
1. Plan loads the manifest and resolves it into scaffold entries
2. The runner stats every source it will need, concurrently, before any
   file in the project is touched
3. Entries are processed one at a time in manifest order; when two entries
   share a destination the later one wins
4. The first failure aborts the run and nothing is rolled back

🔍 Example:

	summary, err := operation.Scaffold(ctx, ".scaffoldrc.yaml", operation.Options{})
	if err != nil {
		return err
	}
	fmt.Println(summary)
*/
package operation
