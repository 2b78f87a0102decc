/*
Package config manages configuration parsing and validation for ghtree.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |  JSON   |   |   HCL   |
	| Parser  |   | Parser  |   | Parser  |
	+---------+   +---------+   +---------+

🎯 Purpose:
- Names the repository browsed when a request leaves owner/repo/branch unset
- Configures the HTTP listener and the upstream API endpoint
- Names the environment variable holding the optional bearer token

🔄 Flow:
1. Picks a parser from the file extension
2. Decodes, rejecting unknown fields
3. Validate() fills defaults and normalizes the base URL

Defaults are explicit values on Config, never package state, so the relay and
the navigator receive them at construction and tests can override them per call.

🔍 Example:

	repository {
	  owner  = "AvnishSingh-Ch"
	  repo   = "web-img"
	  branch = "main"
	}

	server {
	  listen = ":3000"
	}

	github {
	  token_env = "GITHUB_TOKEN"
	}
*/
package config
