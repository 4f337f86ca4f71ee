/*
Package config loads the scaffold manifest for a project.

	            +-------------+
	            |  Manifest   |
	            | (Settings)  |
	            +------+------+
	                   |
	  +--------+-------+-------+--------+
	  |        |               |        |
	+-+--+  +--+--+         +--+--+  +--+---+
	|YAML|  | JSON|         | HCL |  | TOML |
	+----+  +-----+         +-----+  +------+

🎯 Purpose:
- Parses the manifest in whichever format its extension names
- Validates packages, file mappings, locations and allowed-package globs
- Resolves file mappings into scaffold.Entry values

🔄 Flow:
1. Load reads the file and picks a Parser by extension
2. Validate rejects incomplete packages and malformed patterns
3. Resolve filters packages through allowed-packages, interpolates
   [location] tokens and merges project-wide options into per-file options

⚡ Option merging:
- symlink is project-wide
- overwrite defaults to true and can be disabled project-wide or per file

🔍 Example:

	m, err := config.Load(ctx, ".scaffoldrc.yaml")
	if err != nil {
		return err
	}
	entries, err := m.Resolve(ctx, filepath.Dir(m.Location()))

HCL manifests can refer to the project root directly:

	package "acme/core" {
	  path = "${project_root}/vendor/acme/core"
	  file {
	    destination = "[web-root]/robots.txt"
	    source      = "assets/robots.txt"
	  }
	}
*/
package config
