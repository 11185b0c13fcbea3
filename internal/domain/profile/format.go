package profile

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/heavenike02/sdg-showcase-3/internal/domain/model"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/target"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/taxonomy"
	"github.com/heavenike02/sdg-showcase-3/pkg/metrics"
)

// Defaults applied to publication entries with missing fields.
const (
	defaultPublicationName   = "Untitled Publication"
	defaultPublicationAuthor = "Author Unknown"
	defaultPublicationLink   = "#"
)

// Format builds the full display profile for one record. It never fails:
// each sub-blob parse is guarded independently and degrades to an empty
// collection for that blob only.
func Format(rec model.ResearcherRecord) Profile {
	ia := rec.DecodeImpactAssessment()
	targets := target.NormalizeWithImpacts(rec.Targets, ia.TargetImpacts)
	primary := target.PrimarySDG(targets)

	teaching, projects, modules := parseModules(rec.Modules, primary)

	p := Profile{
		ID:                   rec.ID,
		Name:                 rec.Name(),
		Title:                rec.Title,
		Department:           rec.UniversitySchool,
		Institution:          rec.University,
		Email:                rec.Email,
		Bio:                  rec.Objectives,
		Interests:            SplitInterests(rec.Objectives),
		PrimarySDG:           primary,
		SDGs:                 target.SDGs(targets),
		Targets:              targets,
		TargetImpacts:        ia.TargetImpacts,
		Insights:             ia.Insights,
		RecommendedTags:      ia.RecommendedTags,
		Tags:                 rec.Tags,
		Publications:         parsePublications(rec.Publications, primary),
		PublicationsOverview: rec.PublicationsOverview,
		Teaching:             teaching,
		Projects:             projects,
		Modules:              modules,
		ProfilePicture:       rec.ProfilePicture,
		Image:                PlaceholderImage(rec, primary, 400),
	}
	return p
}

// FormatCard builds the compact search-result projection.
func FormatCard(rec model.ResearcherRecord) Card {
	targets := target.Normalize(rec.Targets)
	primary := target.PrimarySDG(targets)
	image := rec.ProfilePicture
	if image == "" {
		image = PlaceholderImage(rec, primary, 100)
	}
	return Card{
		ID:          rec.ID,
		Name:        rec.Name(),
		Title:       rec.Title,
		Department:  rec.UniversitySchool,
		Institution: rec.University,
		Interests:   SplitInterests(rec.Objectives),
		PrimarySDG:  primary,
		SDGs:        target.SDGs(targets),
		Image:       image,
	}
}

// SplitInterests derives discrete interest phrases from the free-text
// objectives field by splitting on commas, periods and semicolons. No
// language processing, just punctuation.
func SplitInterests(objectives string) []string {
	if objectives == "" {
		return nil
	}
	var out []string
	for _, frag := range strings.FieldsFunc(objectives, func(r rune) bool {
		return r == ',' || r == '.' || r == ';'
	}) {
		if s := strings.TrimSpace(frag); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// PlaceholderImage synthesizes a deterministic avatar URL from the primary
// SDG color and the researcher's initials.
func PlaceholderImage(rec model.ResearcherRecord, primarySDG, size int) string {
	color := strings.TrimPrefix(taxonomy.ColorFor(primarySDG), "#")
	var initials strings.Builder
	for _, name := range []string{rec.FirstName, rec.LastName} {
		if name == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(name)
		initials.WriteRune(r)
	}
	return fmt.Sprintf("https://placehold.co/%dx%d/%s/FFFFFF/png?text=%s", size, size, color, initials.String())
}

// rawPublication tolerates partially-filled publication entries.
type rawPublication struct {
	Name   string `json:"name"`
	Author string `json:"author"`
	Link   string `json:"link"`
	SDG    string `json:"sdg"`
}

// parsePublications decodes the publications blob, applying field defaults.
// Author strings joined with "-" are reformatted as a comma-separated list.
func parsePublications(raw json.RawMessage, primarySDG int) []Publication {
	if len(raw) == 0 {
		return nil
	}
	data := unquote(raw)
	var entries []rawPublication
	if err := json.Unmarshal(data, &entries); err != nil {
		metrics.RecordMalformedField("publications")
		return nil
	}
	out := make([]Publication, 0, len(entries))
	for _, e := range entries {
		author := e.Author
		if author == "" {
			author = defaultPublicationAuthor
		} else if strings.Contains(author, "-") {
			parts := strings.Split(author, "-")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			author = strings.Join(parts, ", ")
		}
		pub := Publication{
			Name:   e.Name,
			Author: author,
			Link:   e.Link,
			SDG:    e.SDG,
		}
		if pub.Name == "" {
			pub.Name = defaultPublicationName
		}
		if pub.Link == "" {
			pub.Link = defaultPublicationLink
		}
		if pub.SDG == "" {
			pub.SDG = strconv.Itoa(primarySDG)
		}
		out = append(out, pub)
	}
	return out
}

// rawTeaching matches the {teaching: [...]} shape.
type rawTeaching struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SDGs        []int  `json:"sdgs"`
}

// rawProject matches the {projects: [...]} shape.
type rawProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        string `json:"year"`
	Funding     string `json:"funding"`
}

// parseModules decodes the modules blob. Three shapes are supported and
// checked independently: an object with a teaching list, an object with a
// projects list, and a bare array of module entries. None excludes another.
func parseModules(raw json.RawMessage, primarySDG int) ([]Teaching, []Project, []Module) {
	if len(raw) == 0 {
		return nil, nil, nil
	}
	data := unquote(raw)

	var teaching []Teaching
	var projects []Project
	var modules []Module

	var wrapper struct {
		Teaching []rawTeaching `json:"teaching"`
		Projects []rawProject  `json:"projects"`
	}
	wrapperErr := json.Unmarshal(data, &wrapper)
	if wrapperErr == nil {
		for _, c := range wrapper.Teaching {
			course := Teaching{
				Code:        c.Code,
				Title:       c.Title,
				Description: c.Description,
				SDGs:        c.SDGs,
			}
			if course.Code == "" {
				course.Code = "Unknown"
			}
			if course.Title == "" {
				course.Title = "Untitled Course"
			}
			if len(course.SDGs) == 0 {
				course.SDGs = []int{primarySDG}
			}
			teaching = append(teaching, course)
		}
		for _, p := range wrapper.Projects {
			proj := Project{
				Title:       p.Title,
				Description: p.Description,
				Year:        p.Year,
				Funding:     p.Funding,
			}
			if proj.Title == "" {
				proj.Title = "Untitled Project"
			}
			if proj.Year == "" {
				proj.Year = "Current"
			}
			if proj.Funding == "" {
				proj.Funding = "Unknown"
			}
			projects = append(projects, proj)
		}
	}

	var flat []Module
	flatErr := json.Unmarshal(data, &flat)
	if flatErr == nil {
		for _, m := range flat {
			if m.ModuleCode == "" {
				m.ModuleCode = "Unknown"
			}
			if m.ModuleName == "" {
				m.ModuleName = "Untitled Module"
			}
			modules = append(modules, m)
		}
	}
	if wrapperErr != nil && flatErr != nil {
		metrics.RecordMalformedField("modules")
	}

	return teaching, projects, modules
}

// unquote unwraps a JSON blob stored as a JSON-encoded string ("double
// encoded"), which some rows carry. Non-string blobs pass through.
func unquote(raw json.RawMessage) []byte {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []byte(s)
	}
	return raw
}
