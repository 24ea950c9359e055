package gen

import (
	"os"
	"path/filepath"
)

var (
	// FeatureFacade generates the procedural façade: nil-checked free
	// functions forwarding to the methods of every class.
	FeatureFacade = Feature{
		Name:        "facade",
		Stage:       Stable,
		Default:     true,
		Description: "Facade generates nil-checked free functions derived from the accessor table of every class",
		cleanup: func(c *Config) error {
			return removeGlob(c.Target, "*_facade.go")
		},
	}

	// FeatureAPI generates the companion declaration unit of every class:
	// an interface with the class method set and a compile-time assertion.
	FeatureAPI = Feature{
		Name:        "api",
		Stage:       Stable,
		Default:     true,
		Description: "API generates a companion interface declaring the method set of every class",
		cleanup: func(c *Config) error {
			return removeGlob(c.Target, "*_api.go")
		},
	}

	// FeatureErrorArtifact writes the error-code table of the package as
	// errors.yaml and errors.msgpack for external error-log collaborators.
	FeatureErrorArtifact = Feature{
		Name:        "errors/artifact",
		Stage:       Beta,
		Default:     false,
		Description: "Writes the error-code registry of the package as YAML and MessagePack artifacts",
		cleanup: func(c *Config) error {
			for _, name := range []string{ErrorArtifactYAML, ErrorArtifactMsgpack} {
				if err := remove(c.Target, name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureFacade,
		FeatureAPI,
		FeatureErrorArtifact,
	}
	// allFeatures includes all public and private features.
	allFeatures = AllFeatures
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development.
	Experimental

	// Alpha features are features whose initial development was finished,
	// but we expect breaking-changes to their APIs.
	Alpha

	// Beta features are Alpha features with a settled output.
	Beta

	// Stable features are Beta features that were running for a while.
	Stable
)

// A Feature of the vergen codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// cleanup used to cleanup all changes when a feature-flag is removed.
	// e.g. delete files from previous codegen runs.
	cleanup func(*Config) error
}

// cleanupFeatures runs the cleanup of every feature that is not enabled.
func cleanupFeatures(c *Config) error {
	for _, f := range allFeatures {
		if f.cleanup == nil || c.HasFeature(f.Name) {
			continue
		}
		if err := f.cleanup(c); err != nil {
			return err
		}
	}
	return nil
}

// remove file (if exists).
func remove(dir, file string) error {
	if err := os.Remove(filepath.Join(dir, file)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// removeGlob removes the files of dir matching pattern.
func removeGlob(dir, pattern string) error {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
