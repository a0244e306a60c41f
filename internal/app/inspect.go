package app

import (
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"dcat-packages/internal/types"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	inputPath := strings.TrimSpace(req.InputPath)
	if inputPath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package path is required")
	}
	pkg, err := s.Reader.ReadPackage(inputPath)
	if err != nil {
		return InspectResult{}, err
	}

	resourceTypes := map[string]int{}
	resourceFormats := map[string]int{}
	for _, resource := range pkg.Resources {
		resourceTypes[resourceTypeName(resource.ResourceType)]++
		format := resource.Format
		if format == "" {
			format = "(none)"
		}
		resourceFormats[format]++
	}
	return InspectResult{
		Title:           pkg.Title,
		LicenseID:       pkg.LicenseID,
		TagCount:        len(pkg.Tags),
		ExtraCount:      len(pkg.Extras),
		ResourceTypes:   countEntries(resourceTypes),
		ResourceFormats: countEntries(resourceFormats),
	}, nil
}

func resourceTypeName(resourceType types.ResourceType) string {
	if resourceType == types.ResourceTypeDistribution {
		return "distribution"
	}
	return string(resourceType)
}

// countEntries orders a frequency table by count, then name.
func countEntries(counts map[string]int) []CountEntry {
	entries := make([]CountEntry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, CountEntry{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}
