// Package envinput reads a game submission from the environment the
// submission workflow populates. It is the only place string flags are
// turned into booleans.
package envinput

import (
	"strings"

	"crc.gg/gamefile/gamefile"
)

// Environment variable names set by the submission workflow.
const (
	EnvGameName        = "GAME_NAME"
	EnvGameID          = "GAME_ID"
	EnvFirstLetter     = "FIRST_LETTER"
	EnvCategories      = "CATEGORIES"
	EnvChallenges      = "CHALLENGES"
	EnvCharEnabled     = "CHAR_ENABLED"
	EnvCharLabel       = "CHAR_LABEL"
	EnvSubmitter       = "SUBMITTER"
	EnvCreditRequested = "CREDIT_REQUESTED"
	EnvDetails         = "DETAILS_IN"
	EnvOutFile         = "OUT_FILE"
)

// Lookup matches os.LookupEnv.
type Lookup func(key string) (string, bool)

// Config is everything one generate run needs.
type Config struct {
	Input   gamefile.Input
	OutFile string
	// DetailsRaw is the undecoded details payload, kept for logging.
	DetailsRaw string
}

// FromEnv reads the workflow variables. Absent variables are empty; the
// details payload defaults to "{}".
func FromEnv(lookup Lookup) Config {
	get := func(key string) string {
		if lookup == nil {
			return ""
		}
		v, _ := lookup(key)
		return v
	}
	details := get(EnvDetails)
	if strings.TrimSpace(details) == "" {
		details = "{}"
	}
	return Config{
		Input: gamefile.Input{
			Name:             get(EnvGameName),
			ID:               get(EnvGameID),
			FirstLetter:      get(EnvFirstLetter),
			Categories:       get(EnvCategories),
			Challenges:       get(EnvChallenges),
			CharacterEnabled: gamefile.ParseFlag(get(EnvCharEnabled)),
			CharacterLabel:   get(EnvCharLabel),
			Submitter:        get(EnvSubmitter),
			CreditRequested:  gamefile.ParseFlag(get(EnvCreditRequested)),
			Details:          gamefile.LoadDetails(details),
		},
		OutFile:    strings.TrimSpace(get(EnvOutFile)),
		DetailsRaw: details,
	}
}

// SetDetails replaces the details payload.
func (c *Config) SetDetails(raw string) {
	c.DetailsRaw = raw
	c.Input.Details = gamefile.LoadDetails(raw)
}

// Validate checks the requirements that belong to the run rather than the
// submission itself.
func (c Config) Validate() error {
	if c.OutFile == "" {
		return gamefile.InputError("GAME-IN-004", "output path is empty")
	}
	return nil
}
