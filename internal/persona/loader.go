package persona

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Record file names under the persona directory.
const (
	identityFile     = "identity.json"
	personalityFile  = "personality.json"
	moodFile         = "mood.json"
	relationshipFile = "relationship.json"
	partnerFile      = "partner_details.json"
	objectiveFile    = "objective.json"
)

// Load reads every record file under dir. A missing or unparseable file
// degrades to the record's zero value and is never fatal; each failure is
// logged once at load time so consumers need no defensive access.
func Load(dir string, logger zerolog.Logger) Records {
	var records Records
	loadRecord(dir, identityFile, &records.Identity, logger)
	loadRecord(dir, personalityFile, &records.Personality, logger)
	loadRecord(dir, moodFile, &records.Mood, logger)
	loadRecord(dir, relationshipFile, &records.Relationship, logger)
	loadRecord(dir, partnerFile, &records.Partner, logger)
	loadRecord(dir, objectiveFile, &records.Objective, logger)
	return records
}

func loadRecord[T any](dir, name string, out *T, logger zerolog.Logger) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("file", name).Msg("persona record missing, using defaults")
		return
	}
	var parsed T
	if err := json.Unmarshal(data, &parsed); err != nil {
		logger.Warn().Err(err).Str("file", name).Msg("persona record unparseable, using defaults")
		return
	}
	*out = parsed
}
