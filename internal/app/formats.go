package app

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Formats reports how each hint resolves against the loaded format
// tables.
func (s Service) Formats(req FormatsRequest) (FormatsResult, error) {
	if len(req.Hints) == 0 {
		return FormatsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one format hint is required")
	}
	result := FormatsResult{Resolutions: make([]FormatResolution, 0, len(req.Hints))}
	for _, hint := range req.Hints {
		_, known := s.Catalog.Lookup(hint)
		label := s.Resolver.NormalizeFormat(hint)
		result.Resolutions = append(result.Resolutions, FormatResolution{
			Hint:     hint,
			Label:    label,
			Mimetype: s.Resolver.ToMimetype(label),
			Known:    known,
		})
	}
	return result, nil
}
