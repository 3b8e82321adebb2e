package hafas

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Profile is the static identity of one HAFAS deployment and the stop it is queried for.
type Profile struct {
	Endpoint    string        `yaml:"endpoint" validate:"required,url"`
	StopLid     string        `yaml:"stopLid" validate:"required"`
	MaxJourneys int           `yaml:"maxJourneys" validate:"gte=1,lte=1000"`
	Timezone    string        `yaml:"timezone" validate:"required"`
	Version     string        `yaml:"version" validate:"required"`
	Language    string        `yaml:"language" validate:"required"`
	Timeout     time.Duration `yaml:"timeout" validate:"gt=0"`

	Client ClientIdentity `yaml:"client"`
	Auth   Auth           `yaml:"auth"`
}

type ClientIdentity struct {
	Type string `yaml:"type" json:"type" validate:"required"`
	ID   string `yaml:"id" json:"id" validate:"required"`
	Name string `yaml:"name" json:"name" validate:"required"`
}

type Auth struct {
	Type string `yaml:"type" json:"type" validate:"required"`
	AID  string `yaml:"aid" json:"aid" validate:"required"`
}

// DefaultProfile queries the AVV Aachen mgate for the Aachen Bushof departure board.
func DefaultProfile() Profile {
	return Profile{
		Endpoint:    "https://auskunft.avv.de/bin/mgate.exe",
		StopLid:     "A=1@L=1001@",
		MaxJourneys: 50,
		Timezone:    ReferenceTimezone,
		Version:     "1.26",
		Language:    "deu",
		Timeout:     10 * time.Second,
		Client: ClientIdentity{
			Type: "WEB",
			ID:   "AVV_AACHEN",
			Name: "webapp",
		},
		Auth: Auth{
			Type: "AID",
			AID:  "4vV1AcH3N511icH",
		},
	}
}

// LoadProfile overlays the YAML file at path onto DefaultProfile. An empty path returns
// the defaults.
func LoadProfile(path string) (Profile, error) {
	profile := DefaultProfile()
	if path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("read upstream profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("parse upstream profile: %w", err)
	}

	if err := profile.Validate(); err != nil {
		return profile, err
	}

	return profile, nil
}

func (p Profile) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		return fmt.Errorf("invalid upstream profile: %w", err)
	}

	return nil
}

func (p Profile) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", p.Timezone, err)
	}

	return loc, nil
}
