package scanner

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/yuuhLKT/warden/internal/filesystem"
)

// packageJSON is the subset of a Node manifest detection cares about.
type packageJSON struct {
	Name             string            `json:"name"`
	Private          bool              `json:"private"`
	Scripts          map[string]string `json:"scripts"`
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
	Workspaces       json.RawMessage   `json:"workspaces"`
}

func readPackageJSON(fs filesystem.FileSystem, dir string) (*packageJSON, error) {
	data, err := fs.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return nil, err
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}
	return &pkg, nil
}

func (p *packageJSON) hasDependency(name string) bool {
	if _, ok := p.Dependencies[name]; ok {
		return true
	}
	if _, ok := p.DevDependencies[name]; ok {
		return true
	}
	_, ok := p.PeerDependencies[name]
	return ok
}

// workspacePatterns decodes the workspaces field, which is either a plain
// array or an object with a packages array.
func (p *packageJSON) workspacePatterns() []string {
	if len(p.Workspaces) == 0 {
		return nil
	}

	var patterns []string
	if err := json.Unmarshal(p.Workspaces, &patterns); err == nil {
		return patterns
	}

	var obj struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(p.Workspaces, &obj); err == nil {
		return obj.Packages
	}
	return nil
}

var (
	scriptPortFlag   = regexp.MustCompile(`-p\s+(\d+)`)
	scriptPortEquals = regexp.MustCompile(`--port[=\s]+(\d+)`)
	scriptPortEnv    = regexp.MustCompile(`PORT=(\d+)`)
	scriptPortColon  = regexp.MustCompile(`:(\d{4,5})`)
)

// portFromScripts digs a port number out of the dev/start scripts.
// Returns 0 when no script mentions one.
func (p *packageJSON) portFromScripts() int {
	for _, script := range []string{p.Scripts["dev"], p.Scripts["start"], p.Scripts["serve"]} {
		if script == "" {
			continue
		}
		for _, re := range []*regexp.Regexp{scriptPortFlag, scriptPortEquals, scriptPortEnv, scriptPortColon} {
			if m := re.FindStringSubmatch(script); m != nil {
				if port, err := strconv.Atoi(m[1]); err == nil && port > 0 && port <= 65535 {
					return port
				}
			}
		}
	}
	return 0
}

// cargoManifest is the subset of Cargo.toml detection cares about.
type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	// Values are either version strings or inline tables; detection only
	// cares about the keys.
	Dependencies map[string]interface{} `toml:"dependencies"`
	Workspace    struct {
		Members []string `toml:"members"`
	} `toml:"workspace"`
}

func readCargoManifest(fs filesystem.FileSystem, dir string) (*cargoManifest, error) {
	data, err := fs.ReadFile(filepath.Join(dir, "Cargo.toml"))
	if err != nil {
		return nil, err
	}

	var manifest cargoManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse Cargo.toml: %w", err)
	}
	return &manifest, nil
}

func (c *cargoManifest) hasDependency(name string) bool {
	_, ok := c.Dependencies[name]
	return ok
}

// tauriConf is the subset of tauri.conf.json detection cares about.
type tauriConf struct {
	Build struct {
		DevURL         string `json:"devUrl"`
		BeforeDevCmd   string `json:"beforeDevCommand"`
		BeforeBuildCmd string `json:"beforeBuildCommand"`
		DevPath        string `json:"devPath"`
	} `json:"build"`
}

func readTauriConf(fs filesystem.FileSystem, dir string) (*tauriConf, error) {
	var data []byte
	var err error
	for _, candidate := range []string{"tauri.conf.json", "src-tauri/tauri.conf.json"} {
		data, err = fs.ReadFile(filepath.Join(dir, candidate))
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	var conf tauriConf
	if err := json.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse tauri.conf.json: %w", err)
	}
	return &conf, nil
}

var urlPortPattern = regexp.MustCompile(`:(\d+)`)

// devPort extracts the port from the configured dev URL, 0 if absent.
func (t *tauriConf) devPort() int {
	for _, url := range []string{t.Build.DevURL, t.Build.DevPath} {
		if m := urlPortPattern.FindStringSubmatch(url); m != nil {
			if port, err := strconv.Atoi(m[1]); err == nil {
				return port
			}
		}
	}
	return 0
}
