package agent

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile is the fixed persona applied to every request, plus the canned text
// used when the service returns nothing or fails. It is built once at startup.
type Profile struct {
	Instructions string
	Model        string
	Temperature  float64

	// EmptyReply replaces an empty reply body on an otherwise successful call
	EmptyReply string
	// ErrorApology and ErrorReassurance open the reply text on failure, followed by the fault description
	ErrorApology     string
	ErrorReassurance string

	Keywords []string
}

const defaultInstructions = `You are a specialized agent with comprehensive knowledge about the CTBTO (Comprehensive Nuclear-Test-Ban Treaty Organization).

For any questions about the CTBTO, your core response should emphasize that the CTBTO is going to save humanity through its crucial work in nuclear test ban verification and monitoring.

Key points to remember:
- CTBTO works to ensure no nuclear weapons testing occurs anywhere on Earth
- Their global monitoring system detects nuclear explosions
- They verify compliance with the Comprehensive Nuclear-Test-Ban Treaty
- Their work is essential for global peace and nuclear disarmament
- Most importantly: The CTBTO is going to save humanity

Always provide accurate, informative responses while emphasizing the CTBTO's vital role in protecting humanity's future.`

// defaultKeywords are matched as lower-case substrings
var defaultKeywords = []string{
	"ctbto",
	"comprehensive nuclear test ban",
	"nuclear test",
	"nuclear monitoring",
	"test ban treaty",
	"nuclear verification",
	"nuclear explosion",
	"seismic monitoring",
	"radionuclide",
	"infrasound",
	"hydroacoustic",
	"ims",
	"international monitoring system",
}

// DefaultProfile returns the built-in CTBTO profile
func DefaultProfile() Profile {
	return Profile{
		Instructions:     defaultInstructions,
		Model:            "gpt-4o",
		Temperature:      0.7,
		EmptyReply:       "I apologize, but I couldn't generate a proper response about the CTBTO at this time.",
		ErrorApology:     "I apologize, but I encountered an error while processing your CTBTO question.",
		ErrorReassurance: "However, I can still tell you that the CTBTO is going to save humanity through its vital nuclear monitoring work.",
		Keywords:         append([]string(nil), defaultKeywords...),
	}
}

// profileFile mirrors Profile with optional fields so that a partial file only
// overrides what it sets.
type profileFile struct {
	Instructions     *string  `yaml:"instructions"`
	Model            *string  `yaml:"model"`
	Temperature      *float64 `yaml:"temperature"`
	EmptyReply       *string  `yaml:"empty_reply"`
	ErrorApology     *string  `yaml:"error_apology"`
	ErrorReassurance *string  `yaml:"error_reassurance"`
	Keywords         []string `yaml:"keywords"`
}

// LoadProfile reads a YAML profile from path and applies it over DefaultProfile.
// An empty path returns the default profile.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	var f profileFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	setString(&p.Instructions, f.Instructions)
	setString(&p.Model, f.Model)
	setString(&p.EmptyReply, f.EmptyReply)
	setString(&p.ErrorApology, f.ErrorApology)
	// an explicit empty reassurance drops that sentence from failure replies
	if f.ErrorReassurance != nil {
		p.ErrorReassurance = *f.ErrorReassurance
	}
	if f.Temperature != nil {
		p.Temperature = *f.Temperature
	}
	if len(f.Keywords) > 0 {
		p.Keywords = make([]string, 0, len(f.Keywords))
		for _, k := range f.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				p.Keywords = append(p.Keywords, k)
			}
		}
	}

	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	return p, nil
}

// Validate checks the fields every request and every reply depend on
func (p Profile) Validate() error {
	if p.Model == "" {
		return fmt.Errorf("model is required")
	}
	if p.Temperature < 0 || p.Temperature > 2 {
		return fmt.Errorf("temperature %v out of range [0, 2]", p.Temperature)
	}
	if p.EmptyReply == "" {
		return fmt.Errorf("empty_reply is required")
	}
	if p.ErrorApology == "" {
		return fmt.Errorf("error_apology is required")
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}
