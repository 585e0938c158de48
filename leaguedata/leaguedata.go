// Package leaguedata reads the static league file: manager efficiency, the
// remaining schedule, clinched teams and the team code set.
package leaguedata

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/mww/fantasy_report/model"
	"gopkg.in/yaml.v3"
)

const table = "league data"

type file struct {
	Name              string             `yaml:"name"`
	ManagerEfficiency map[string]float64 `yaml:"manager_efficiency" validate:"required,dive,keys,required,endkeys,gte=0,lte=1"`
	Schedule          model.Schedule     `yaml:"remaining_schedule" validate:"dive"`
	Clinched          []string           `yaml:"clinched" validate:"dive,required"`
	TeamAbbreviations []string           `yaml:"team_abbreviations" validate:"dive,min=2,max=3"`
}

var validate = validator.New()

// Load reads and validates the league file at path.
func Load(path string) (*model.LeagueData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening league data %s", path)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "league data %s", path)
	}
	return d, nil
}

// Parse reads a league file. Unknown keys, out of range efficiencies and a
// team playing twice in one schedule week are malformed input.
func Parse(r io.Reader) (*model.LeagueData, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var in file
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("file is empty")
		}
		return nil, &model.ParseError{Table: table, Row: -1, Err: err}
	}

	if err := validate.Struct(&in); err != nil {
		pe := &model.ParseError{Table: table, Row: -1, Err: err}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			pe.Field = verrs[0].Namespace()
		}
		return nil, pe
	}

	for i, w := range in.Schedule {
		seen := make(map[string]bool)
		for _, g := range w.Games {
			for _, team := range []string{g.Team1, g.Team2} {
				if seen[team] {
					return nil, &model.ParseError{Table: table, Team: team, Row: i, Field: "remaining_schedule",
						Err: errors.Newf("%s plays twice in %s", team, w.Label)}
				}
				seen[team] = true
			}
		}
	}

	abbrevs := model.DefaultAbbrevs()
	if len(in.TeamAbbreviations) > 0 {
		var err error
		if abbrevs, err = model.NewAbbrevSet(in.TeamAbbreviations); err != nil {
			return nil, &model.ParseError{Table: table, Row: -1, Field: "team_abbreviations", Err: err}
		}
	}

	return &model.LeagueData{
		Name:              in.Name,
		ManagerEfficiency: model.ManagerEfficiency(in.ManagerEfficiency),
		Schedule:          in.Schedule,
		Clinched:          in.Clinched,
		Abbrevs:           abbrevs,
	}, nil
}
