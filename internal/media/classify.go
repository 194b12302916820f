package media

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"mediasort/internal/textutil"
)

// noiseTokens end title extraction. Matching is case-insensitive.
var noiseTokens = []string{"1080p", "720p", "HDTS", "WEB", "webrip", "HEVC", "UltraHD"}

var (
	episodePattern = regexp.MustCompile(`^[sS](\d{2})[eE](\d{2})$`)
	yearPattern    = regexp.MustCompile(`^(?:(?:19|20)\d{2}|\((?:19|20)\d{2}\))$`)
)

// scanState is the accumulator threaded through the token scan. Each step
// returns an updated copy; the final value is turned into a Descriptor.
type scanState struct {
	words      []string
	tv         bool
	marker     string
	season     int
	hasSeason  bool
	episode    int
	hasEpisode bool
	done       bool
}

// Classify parses the base name of path into a Movie or TV descriptor. It
// returns ErrNotVideo for unrecognized extensions and ErrEmptyTitle when no
// title survives the scan. No filesystem access is performed.
func Classify(path string) (Descriptor, error) {
	name := filepath.Base(path)
	ext := extensionOf(name)
	if !IsVideoExtension(ext) {
		return nil, ErrNotVideo
	}

	stem := name[:len(name)-len(ext)]
	tokens := strings.Fields(strings.ReplaceAll(stem, ".", " "))

	state := scanState{}
	for i := 0; i < len(tokens) && !state.done; i++ {
		state = step(state, tokens, i)
	}
	if len(state.words) == 0 {
		return nil, ErrEmptyTitle
	}

	base := Base{
		SourcePath: path,
		Title:      textutil.SentenceCase(strings.Join(state.words, " ")),
		Extension:  ext,
	}
	if !state.tv {
		return Movie{Base: base}, nil
	}
	return TV{
		Base:       base,
		Marker:     state.marker,
		Season:     state.season,
		HasSeason:  state.hasSeason,
		Episode:    state.episode,
		HasEpisode: state.hasEpisode,
	}, nil
}

// step examines tokens[i]. Stop conditions are checked before the token is
// appended to the title.
func step(state scanState, tokens []string, i int) scanState {
	token := tokens[i]

	if textutil.EqualFoldAny(token, noiseTokens...) {
		state.done = true
		return state
	}

	if next, ok := withMarker(state, token); ok {
		next.done = true
		return next
	}

	if i > 0 && yearPattern.MatchString(token) {
		state.words = append(state.words, wrapYear(token))
		if i+1 < len(tokens) {
			if next, ok := withMarker(state, tokens[i+1]); ok {
				state = next
			}
		}
		state.done = true
		return state
	}

	state.words = append(state.words, token)
	return state
}

// withMarker promotes state to TV when token is a season/episode marker.
// Digit parse failures leave the corresponding field unset.
func withMarker(state scanState, token string) (scanState, bool) {
	match := episodePattern.FindStringSubmatch(token)
	if match == nil {
		return state, false
	}
	state.tv = true
	state.marker = strings.ToUpper(token)
	if season, err := strconv.Atoi(match[1]); err == nil {
		state.season, state.hasSeason = season, true
	}
	if episode, err := strconv.Atoi(match[2]); err == nil {
		state.episode, state.hasEpisode = episode, true
	}
	return state, true
}

func wrapYear(token string) string {
	if strings.HasPrefix(token, "(") {
		return token
	}
	return "(" + token + ")"
}

// extensionOf returns the lowercase suffix starting at the last dot. A name
// whose only dot is the leading one has no extension.
func extensionOf(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(name[idx:])
}
