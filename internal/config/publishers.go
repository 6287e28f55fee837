// Package config loads file-based configuration. Environment variables stay
// the primary configuration surface; files carry data too structured for env
// vars, such as the publisher seed list.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"newsdesk/internal/domain/entity"
)

// PublisherSeed is one entry of the publisher seed file.
type PublisherSeed struct {
	Name    string `yaml:"name"`
	LogoURL string `yaml:"logo_url"`
}

type publisherSeedFile struct {
	Publishers []PublisherSeed `yaml:"publishers"`
}

// LoadPublisherSeeds reads the YAML publisher seed file. Each entry needs a
// non-empty unique name; logo URLs are optional but must be valid when set.
//
// File format:
//
//	publishers:
//	  - name: The Morning Herald
//	    logo_url: https://cdn.example.com/herald.png
//	  - name: City Tribune
func LoadPublisherSeeds(path string) ([]PublisherSeed, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config, not request input
	if err != nil {
		return nil, fmt.Errorf("read publisher seed file: %w", err)
	}

	var file publisherSeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse publisher seed file: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Publishers))
	for i, seed := range file.Publishers {
		if seed.Name == "" {
			return nil, fmt.Errorf("publisher seed %d: name is required", i)
		}
		if _, dup := seen[seed.Name]; dup {
			return nil, fmt.Errorf("publisher seed %d: duplicate name %q", i, seed.Name)
		}
		seen[seed.Name] = struct{}{}
		if seed.LogoURL != "" {
			if err := entity.ValidateURL(seed.LogoURL); err != nil {
				return nil, fmt.Errorf("publisher seed %q: %w", seed.Name, err)
			}
		}
	}

	return file.Publishers, nil
}
