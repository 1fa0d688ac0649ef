package scanner

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yuuhLKT/warden/internal/filesystem"
	"github.com/yuuhLKT/warden/internal/models"
	"gopkg.in/yaml.v3"
)

var composeFileNames = []string{
	"docker-compose.yml", "docker-compose.yaml", "compose.yml", "compose.yaml",
}

type composeFile struct {
	Services map[string]composeService `yaml:"services"`
}

type composeService struct {
	Image   string    `yaml:"image"`
	Build   yaml.Node `yaml:"build"`
	Ports   []string  `yaml:"ports"`
	Command yaml.Node `yaml:"command"`
}

func hasDocker(fs filesystem.FileSystem, dir string) bool {
	if fs.Exists(filepath.Join(dir, "Dockerfile")) || fs.Exists(filepath.Join(dir, "dockerfile")) {
		return true
	}
	return hasDockerCompose(fs, dir)
}

func hasDockerCompose(fs filesystem.FileSystem, dir string) bool {
	for _, name := range composeFileNames {
		if fs.Exists(filepath.Join(dir, name)) {
			return true
		}
	}
	return false
}

func readComposeFile(fs filesystem.FileSystem, dir string) (*composeFile, string, error) {
	var lastErr error
	for _, name := range composeFileNames {
		data, err := fs.ReadFile(filepath.Join(dir, name))
		if err != nil {
			lastErr = err
			continue
		}

		var compose composeFile
		if err := yaml.Unmarshal(data, &compose); err != nil {
			lastErr = err
			continue
		}
		return &compose, name, nil
	}
	return nil, "", lastErr
}

// detectDockerServices lists the application services of a compose file.
// Infrastructure containers (databases, queues) are not services a
// developer starts on their own, so they are skipped.
func detectDockerServices(fs filesystem.FileSystem, dir string) []models.DetectedService {
	compose, _, err := readComposeFile(fs, dir)
	if err != nil {
		return nil
	}

	var services []models.DetectedService
	for name, svc := range compose.Services {
		if svc.isInfrastructure() {
			continue
		}
		services = append(services, composeServiceToDetected(dir, name, svc))
	}
	return services
}

func composeServiceToDetected(dir, name string, svc composeService) models.DetectedService {
	detected := models.DetectedService{
		Name:              name,
		Path:              dir,
		RelativePath:      ".",
		Category:          categoryDocker,
		Framework:         models.FrameworkUnknown,
		PackageManager:    models.PMUnknown,
		IsDockerService:   true,
		DockerServiceName: name,
		Port:              svc.hostPort(),
		DevCommand:        svc.commandString(),
	}

	if raw := svc.buildContext(); raw != "" {
		if context := filepath.Clean(raw); context != "." {
			detected.RelativePath = context
			detected.Path = filepath.Join(dir, context)
		}
	}

	// The service name often says what it is when the image does not.
	nameLower := strings.ToLower(name)
	switch {
	case containsAny(nameLower, "frontend", "web", "client", "ui"):
		detected.Category = categoryFrontend
	case containsAny(nameLower, "backend", "api", "server", "service"):
		detected.Category = categoryBackend
	case containsAny(nameLower, "worker", "job", "queue"):
		detected.Category = categoryWorker
	}

	imageLower := strings.ToLower(svc.Image)
	switch {
	case strings.Contains(imageLower, "node"):
		detected.Framework = models.FrameworkNode
		detected.Stack = "node"
	case strings.Contains(imageLower, "python"):
		detected.Framework = models.FrameworkPython
		detected.Stack = "django"
	case strings.Contains(imageLower, "php"):
		detected.Framework = models.FrameworkPHP
		detected.Stack = "php"
	case strings.Contains(imageLower, "ruby"):
		detected.Framework = models.FrameworkRuby
		detected.Stack = "rails"
	case strings.Contains(imageLower, "golang"), strings.Contains(imageLower, "go:"):
		detected.Framework = models.FrameworkGo
		detected.Stack = "go"
	case strings.Contains(imageLower, "rust"):
		detected.Framework = models.FrameworkRust
		detected.Stack = "rust"
	case strings.Contains(imageLower, "nginx"):
		detected.Category = categoryFrontend
		detected.Stack = "other"
	}

	return detected
}

var infrastructureImages = []string{
	"postgres", "mysql", "mariadb", "mongo", "redis", "memcached",
	"elasticsearch", "cassandra", "couchdb", "neo4j", "influxdb",
	"clickhouse", "rabbitmq", "kafka", "nats", "activemq", "pulsar",
}

func (s composeService) isInfrastructure() bool {
	image := strings.ToLower(s.Image)
	if image == "" {
		return false
	}
	for _, infra := range infrastructureImages {
		if strings.Contains(image, infra) {
			return true
		}
	}
	return false
}

// hostPort parses the first port mapping. Formats: "3000",
// "3000:3000", "127.0.0.1:3000:3000".
func (s composeService) hostPort() int {
	if len(s.Ports) == 0 {
		return 0
	}

	parts := strings.Split(s.Ports[0], ":")
	var hostPart string
	switch len(parts) {
	case 1:
		hostPart = parts[0]
	case 2:
		hostPart = parts[0]
	case 3:
		hostPart = parts[1]
	default:
		return 0
	}

	port, err := strconv.Atoi(strings.TrimSpace(hostPart))
	if err != nil {
		return 0
	}
	return port
}

// buildContext returns the build path whether build is a bare string or
// a mapping with a context key.
func (s composeService) buildContext() string {
	switch s.Build.Kind {
	case yaml.ScalarNode:
		return s.Build.Value
	case yaml.MappingNode:
		var complex struct {
			Context string `yaml:"context"`
		}
		if err := s.Build.Decode(&complex); err == nil {
			return complex.Context
		}
	}
	return ""
}

// commandString flattens a compose command, which is either a string or
// an argv list.
func (s composeService) commandString() string {
	switch s.Command.Kind {
	case yaml.ScalarNode:
		return s.Command.Value
	case yaml.SequenceNode:
		var parts []string
		if err := s.Command.Decode(&parts); err == nil {
			return strings.Join(parts, " ")
		}
	}
	return ""
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
