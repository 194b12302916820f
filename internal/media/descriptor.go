package media

// Kind identifies the library a descriptor belongs to.
type Kind int

const (
	KindMovie Kind = iota
	KindTV
)

func (k Kind) String() string {
	switch k {
	case KindTV:
		return "tv"
	default:
		return "movie"
	}
}

// Base holds the fields shared by every descriptor.
type Base struct {
	// SourcePath is the path of the original file.
	SourcePath string
	// Title is the cleaned, sentence-cased display title. Never empty.
	Title string
	// Extension is the lowercase extension including the dot, or empty.
	Extension string
}

// Descriptor is implemented only by Movie and TV.
type Descriptor interface {
	Kind() Kind
	Common() Base
	sealed()
}

// Movie describes a feature film. Any release year is already part of Title.
type Movie struct {
	Base
}

func (Movie) Kind() Kind { return KindMovie }

func (m Movie) Common() Base { return m.Base }

func (Movie) sealed() {}

// TV describes a single episode.
type TV struct {
	Base
	// Marker is the uppercase season/episode token, e.g. S03E01.
	Marker string
	Season int
	// HasSeason is false when the season digits could not be parsed.
	HasSeason  bool
	Episode    int
	HasEpisode bool
}

func (TV) Kind() Kind { return KindTV }

func (t TV) Common() Base { return t.Base }

func (TV) sealed() {}
