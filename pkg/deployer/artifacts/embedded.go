package artifacts

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
)

//go:embed forge-artifacts
var embedDir embed.FS

const embeddedArtifactsDir = "forge-artifacts"

// Load reads the embedded forge artifact for the named contract.
func Load(name string) (*Artifact, error) {
	data, err := embedDir.ReadFile(path.Join(embeddedArtifactsDir, name+".json"))
	if err != nil {
		return nil, fmt.Errorf("no embedded artifact for contract %s: %w", name, err)
	}
	art := new(Artifact)
	if err := json.Unmarshal(data, art); err != nil {
		return nil, fmt.Errorf("unmarshaling artifact for contract %s: %w", name, err)
	}
	return art, nil
}
