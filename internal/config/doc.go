// Package config manages ddfpane configuration and state persistence.
//
// It handles:
//   - The YAML configuration file and its environment overrides
//   - The session (checked-out branch and path) shared between invocations
//
// Example ~/.ddfpane/config.yaml:
//
//	remote: https://github.com/tnc-br/ddf_common.git
//	tmp_dir: /tmp
//	drive_root: /content/gdrive
//	# Quote commands containing ": ", such as rclone remotes, or YAML
//	# reads them as a nested mapping.
//	mount_command: "rclone mount gdrive: /content/gdrive --daemon"
//	command_timeout: 5m
package config
