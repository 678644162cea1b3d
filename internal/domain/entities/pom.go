package entities

import (
	"encoding/xml"
	"fmt"
	"os"
	"regexp"
)

// pomProject holds the parts of a Maven POM needed to find the project version.
type pomProject struct {
	Version string `xml:"version"`
	Parent  struct {
		Version string `xml:"version"`
	} `xml:"parent"`
	Properties struct {
		Entries []pomProperty `xml:",any"`
	} `xml:"properties"`
}

type pomProperty struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

var pomPlaceholderPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// readPomVersion returns project/version (or project/parent/version) from
// the POM at path, substituting ${property} references declared in
// project/properties.
func readPomVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	var project pomProject
	if unmarshalErr := xml.Unmarshal(data, &project); unmarshalErr != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, unmarshalErr)
	}

	version := project.Version
	if version == "" {
		version = project.Parent.Version
	}
	if version == "" {
		return "", fmt.Errorf("no project version declared in %s", path)
	}

	properties := make(map[string]string, len(project.Properties.Entries))
	for _, entry := range project.Properties.Entries {
		properties[entry.XMLName.Local] = entry.Value
	}

	var unresolved string
	version = pomPlaceholderPattern.ReplaceAllStringFunc(version, func(match string) string {
		name := pomPlaceholderPattern.FindStringSubmatch(match)[1]
		if value, ok := properties[name]; ok {
			return value
		}
		unresolved = name
		return match
	})
	if unresolved != "" {
		return "", fmt.Errorf("project version in %s references undefined property %q", path, unresolved)
	}

	return version, nil
}
