// Package effect defines the echo effects an entity applies when it is
// triggered, and the parser for their declarative templates.
package effect

import (
	"errors"
	"fmt"
	"strings"
)

// Kind enumerates echo effects.
type Kind uint8

const (
	None              Kind = iota
	Release                // add a glyph to the active set
	Teach                  // add a glyph to the player's vocabulary
	Decay                  // announce a glyph's waning power
	AmplifyScore           // flat harmonics boost
	FormPack               // suggest glyphs that form a pack
	AmplifyCollective      // flat collective harmonics boost
	Isolate                // strengthen one named entity
	Mirror                 // re-emit the previous echo
)

var kindNames = [...]string{
	None:              "none",
	Release:           "release",
	Teach:             "teach",
	Decay:             "decay",
	AmplifyScore:      "amplify-harmonics",
	FormPack:          "form-pack",
	AmplifyCollective: "amplify-collective",
	Isolate:           "isolate",
	Mirror:            "mirror",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Descriptor is a parsed echo effect. Only the fields relevant to Kind are set.
type Descriptor struct {
	Kind   Kind
	Glyph  string   // Release, Teach, Decay
	Glyphs []string // FormPack
	Target string   // Isolate
}

func (d Descriptor) String() string {
	switch d.Kind {
	case Release, Teach, Decay:
		return fmt.Sprintf("%s %s", d.Kind, d.Glyph)
	case FormPack:
		return fmt.Sprintf("%s %s", d.Kind, strings.Join(d.Glyphs, " "))
	case Isolate:
		return fmt.Sprintf("%s %s", d.Kind, d.Target)
	}
	return d.Kind.String()
}

var (
	// ErrUnknownEffect is returned for templates that match no effect shape.
	ErrUnknownEffect = errors.New("unknown echo effect")
	// ErrMissingArgument is returned when a template lacks its quoted argument.
	ErrMissingArgument = errors.New("echo effect missing argument")
)

// Parse reads a declarative echo template such as "release 'ʘa'" or
// "amplify harmonics". An empty template parses to None. On error the
// returned Descriptor is None.
func Parse(template string) (Descriptor, error) {
	verb, arg, quoted := split(template)
	if verb == "" && !quoted {
		return Descriptor{}, nil
	}

	needArg := func(k Kind) (Descriptor, error) {
		if arg == "" {
			return Descriptor{}, fmt.Errorf("%w: %q", ErrMissingArgument, template)
		}
		return Descriptor{Kind: k, Glyph: arg}, nil
	}

	switch verb {
	case "release":
		return needArg(Release)
	case "teach":
		return needArg(Teach)
	case "decay":
		return needArg(Decay)
	case "amplify harmonics":
		return Descriptor{Kind: AmplifyScore}, nil
	case "amplify collective":
		return Descriptor{Kind: AmplifyCollective}, nil
	case "form pack":
		glyphs := strings.Fields(arg)
		if len(glyphs) == 0 {
			return Descriptor{}, fmt.Errorf("%w: %q", ErrMissingArgument, template)
		}
		return Descriptor{Kind: FormPack, Glyphs: glyphs}, nil
	case "isolate":
		if arg == "" {
			return Descriptor{}, fmt.Errorf("%w: %q", ErrMissingArgument, template)
		}
		return Descriptor{Kind: Isolate, Target: arg}, nil
	case "mirror", "mirror last action":
		return Descriptor{Kind: Mirror}, nil
	}
	return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownEffect, template)
}

// split separates a template into its lower-cased verb phrase and the text
// between its first and last single quotes.
func split(template string) (verb, arg string, quoted bool) {
	s := strings.TrimSpace(template)
	open := strings.IndexByte(s, '\'')
	if open < 0 {
		return normalize(s), "", false
	}
	end := strings.LastIndexByte(s, '\'')
	if end > open {
		arg = strings.TrimSpace(s[open+1 : end])
	}
	return normalize(s[:open]), arg, true
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
