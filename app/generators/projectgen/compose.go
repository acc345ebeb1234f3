package projectgen

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

type composeFile struct {
	Services map[string]composeService `yaml:"services"`
	Volumes  map[string]composeVolume  `yaml:"volumes,omitempty"`
}

type composeService struct {
	Build       string   `yaml:"build"`
	Ports       []string `yaml:"ports"`
	EnvFile     []string `yaml:"env_file,omitempty"`
	Environment []string `yaml:"environment"`
	Volumes     []string `yaml:"volumes,omitempty"`
	Restart     string   `yaml:"restart,omitempty"`
}

type composeVolume struct{}

// renderCompose writes docker-compose.yml for the generated service.
func renderCompose(data templateData) ([]byte, error) {
	doc := composeFile{
		Services: map[string]composeService{
			"api": {
				Build: ".",
				Ports: []string{"8000:8000"},
				Environment: []string{
					"APP_NAME=" + data.Name,
					"DATABASE_URL=/data/app.db",
				},
				Volumes: []string{"data:/data"},
				Restart: "unless-stopped",
			},
		},
		Volumes: map[string]composeVolume{"data": {}},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode docker-compose: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode docker-compose: %w", err)
	}
	return buf.Bytes(), nil
}
