/*
Package scaffold places a single scaffold file into a project tree.

	+-----------+      Process       +---------------+
	|  Source   | -----------------> |  Destination  |
	| (package) |   copy | symlink   |   (project)   |
	+-----------+                    +---------------+

🎯 Purpose:
- Decide whether a destination may be replaced (overwrite policy)
- Copy the source bytes or link to the source (Kind)
- Report the outcome as a Result and one log line

🔄 Flow:
 1. Skip when overwrite is off and the destination exists
 2. Remove the destination and create its parent directories
 3. Link (relative target) or copy (temp file + rename)
 4. Log Skip, Copy or Link through pkg/log

❌ Errors:
Unrecoverable failures are *IOError values. errors.Is matches
ErrSourceUnreadable or ErrDestinationWriteFailed as well as the underlying
cause. A skip is never an error.

🔍 Example:

	src, _ := scaffold.NewFilePath(scaffold.RoleSource, "acme/core", root, "vendor/acme/core/default.cfg")
	dst, _ := scaffold.NewFilePath(scaffold.RoleDestination, "acme/core", root, "config/default.cfg")
	res, err := scaffold.Process(ctx, src, dst, scaffold.Options{Overwrite: true})
*/
package scaffold
