package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultRemote is the shared repository
	DefaultRemote = "https://github.com/tnc-br/ddf_common.git"
	// DefaultTmpDir holds the read-only clone
	DefaultTmpDir = "/tmp"
	// DefaultDriveRoot is where the cloud drive is mounted
	DefaultDriveRoot = "/content/gdrive"
	// DefaultDriveSubdir is the directory inside the drive that holds branch clones
	DefaultDriveSubdir = "MyDrive"
	// DefaultCommandTimeout bounds a single git command
	DefaultCommandTimeout = 5 * time.Minute
)

// Config represents the ddfpane configuration. Unset fields fall back to defaults.
type Config struct {
	Remote         *string `yaml:"remote,omitempty"`
	RepoName       *string `yaml:"repo_name,omitempty"`
	TmpDir         *string `yaml:"tmp_dir,omitempty"`
	DriveRoot      *string `yaml:"drive_root,omitempty"`
	DriveSubdir    *string `yaml:"drive_subdir,omitempty"`
	MountCommand   *string `yaml:"mount_command,omitempty"`
	GitHubAPIURL   *string `yaml:"github_api_url,omitempty"`
	CommandTimeout *string `yaml:"command_timeout,omitempty"`
}

var envOverrides = []struct {
	name  string
	field func(*Config) **string
}{
	{"DDFPANE_REMOTE", func(c *Config) **string { return &c.Remote }},
	{"DDFPANE_REPO_NAME", func(c *Config) **string { return &c.RepoName }},
	{"DDFPANE_TMP_DIR", func(c *Config) **string { return &c.TmpDir }},
	{"DDFPANE_DRIVE_ROOT", func(c *Config) **string { return &c.DriveRoot }},
	{"DDFPANE_DRIVE_SUBDIR", func(c *Config) **string { return &c.DriveSubdir }},
	{"DDFPANE_MOUNT_COMMAND", func(c *Config) **string { return &c.MountCommand }},
	{"DDFPANE_GITHUB_API_URL", func(c *Config) **string { return &c.GitHubAPIURL }},
	{"DDFPANE_COMMAND_TIMEOUT", func(c *Config) **string { return &c.CommandTimeout }},
}

// DefaultPath returns $DDFPANE_CONFIG or ~/.ddfpane/config.yaml
func DefaultPath() string {
	if p := os.Getenv("DDFPANE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(homeDir(), ".ddfpane", "config.yaml")
}

// Load reads the configuration at configPath (DefaultPath when empty) and
// applies environment overrides. A missing file yields the defaults.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultPath()
	}

	cfg := &Config{}
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	for _, o := range envOverrides {
		if v, ok := os.LookupEnv(o.name); ok && v != "" {
			val := v
			*o.field(cfg) = &val
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that have a format.
func (c *Config) Validate() error {
	if c.CommandTimeout != nil && *c.CommandTimeout != "" {
		d, err := time.ParseDuration(*c.CommandTimeout)
		if err != nil {
			return fmt.Errorf("invalid command_timeout %q: %w", *c.CommandTimeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid command_timeout %q: must be positive", *c.CommandTimeout)
		}
	}
	if name := c.GetRepoName(); name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid repo_name %q", name)
	}
	return nil
}

// GetRemote returns the remote URL, or DefaultRemote
func (c *Config) GetRemote() string {
	return valueOr(c.Remote, DefaultRemote)
}

// GetRepoName returns the clone directory name. It defaults to the last path
// element of the remote without its .git suffix, the name git itself picks.
func (c *Config) GetRepoName() string {
	if c.RepoName != nil && *c.RepoName != "" {
		return *c.RepoName
	}
	remote := strings.TrimRight(c.GetRemote(), "/")
	if i := strings.LastIndex(remote, ":"); i >= 0 && !strings.Contains(remote, "://") {
		// scp-like git@host:org/repo.git
		remote = remote[i+1:]
	}
	return strings.TrimSuffix(path.Base(filepath.ToSlash(remote)), ".git")
}

// GetTmpDir returns the parent directory of the read-only clone
func (c *Config) GetTmpDir() string {
	return valueOr(c.TmpDir, DefaultTmpDir)
}

// GetDriveRoot returns the drive mount point
func (c *Config) GetDriveRoot() string {
	return valueOr(c.DriveRoot, DefaultDriveRoot)
}

// GetDriveSubdir returns the directory under the drive root holding branch clones
func (c *Config) GetDriveSubdir() string {
	return valueOr(c.DriveSubdir, DefaultDriveSubdir)
}

// GetMountCommand returns the command used to mount the drive, if any
func (c *Config) GetMountCommand() string {
	return valueOr(c.MountCommand, "")
}

// GetGitHubAPIURL returns the GitHub API endpoint override, if any
func (c *Config) GetGitHubAPIURL() string {
	return valueOr(c.GitHubAPIURL, "")
}

// GetCommandTimeout returns the per-command timeout
func (c *Config) GetCommandTimeout() time.Duration {
	if c.CommandTimeout == nil || *c.CommandTimeout == "" {
		return DefaultCommandTimeout
	}
	d, err := time.ParseDuration(*c.CommandTimeout)
	if err != nil || d <= 0 {
		return DefaultCommandTimeout
	}
	return d
}

// ReadOnlyPath is where the read-only main clone lives
func (c *Config) ReadOnlyPath() string {
	return filepath.Join(c.GetTmpDir(), c.GetRepoName())
}

// BranchDir is the per-branch directory on the drive
func (c *Config) BranchDir(branch string) string {
	return filepath.Join(c.GetDriveRoot(), c.GetDriveSubdir(), branch)
}

// BranchPath is where the writable clone of branch lives
func (c *Config) BranchPath(branch string) string {
	return filepath.Join(c.BranchDir(branch), c.GetRepoName())
}

func valueOr(p *string, def string) string {
	if p != nil && *p != "" {
		return *p
	}
	return def
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
