package resolver

type Source string

const (
	SourceResolved Source = "resolved"
	SourceFallback Source = "fallback"
)

// Outcome is the result of a version lookup. Version is always usable:
// it is either what the metadata endpoint reported or the configured fallback.
type Outcome struct {
	Version string
	Source  Source
}

func Resolved(version string) Outcome {
	return Outcome{Version: version, Source: SourceResolved}
}

func Fallback(version string) Outcome {
	return Outcome{Version: version, Source: SourceFallback}
}

func (o Outcome) IsResolved() bool {
	return o.Source == SourceResolved
}
