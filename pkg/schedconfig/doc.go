// Package schedconfig loads and validates the YAML configuration for
// schedsrv and schedctl: the HTTP listen address, working-directory
// root, lock timeout, and log level.
package schedconfig
